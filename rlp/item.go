package rlp

// Item describes the position of a single RLP item within a buffer,
// without copying its payload out. It is Component R's structural,
// diagnostic reader: a way to walk RLP-framed data one item
// at a time by index arithmetic alone. The V3 codec does not use it on its
// hot path — its fields are read sequentially through a Stream — but it
// backs the nested-item bounds checks tests exercise independently of the
// Stream cursor.
type Item struct {
	Index      int // offset of the lead byte
	DataIndex  int // offset of the payload
	DataLength int // length of the payload
	EndIndex   int // offset just past the payload (Index of the next item)
}

// Wrap inspects the RLP item starting at buffer[index], validates that its
// payload lies entirely within [0, containerEnd), and returns its
// position. It never reads bytes it doesn't have to: only the length
// header is decoded, not the payload.
func Wrap(buffer []byte, index, containerEnd int) (Item, error) {
	if index < 0 || index >= containerEnd || containerEnd > len(buffer) {
		return Item{}, ErrOutOfBounds
	}
	lead := buffer[index]
	switch ClassifyLead(lead) {
	case KindSingleByte:
		return boundedItem(index, index, 1, containerEnd)

	case KindShortString:
		return boundedItem(index, index+1, int(lead-0x80), containerEnd)

	case KindShortList:
		return boundedItem(index, index+1, int(lead-0xc0), containerEnd)

	case KindLongString:
		return wrapLong(buffer, index, lead-0xb7, containerEnd)

	default: // KindLongList
		return wrapLong(buffer, index, lead-0xf7, containerEnd)
	}
}

func wrapLong(buffer []byte, index int, diff byte, containerEnd int) (Item, error) {
	lenOfLen := int(diff)
	lenStart := index + 1
	lenEnd := lenStart + lenOfLen
	if lenEnd > containerEnd {
		return Item{}, ErrOutOfBounds
	}
	length := int(readBigEndian(buffer[lenStart:lenEnd]))
	if length < 56 {
		return Item{}, ErrNonCanonicalSize
	}
	return boundedItem(index, lenEnd, length, containerEnd)
}

func boundedItem(index, dataIndex, dataLength, containerEnd int) (Item, error) {
	end := dataIndex + dataLength
	if end > containerEnd {
		return Item{}, ErrOutOfBounds
	}
	return Item{Index: index, DataIndex: dataIndex, DataLength: dataLength, EndIndex: end}, nil
}
