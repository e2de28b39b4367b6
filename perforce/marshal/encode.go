package marshal

import "encoding/binary"

// Pair is one key/value entry for AppendDict.
type Pair struct {
	Key   string
	Value Value
}

// AppendDict appends one dictionary in the -G format to dst, pairs in the given order.
// Values with an unknown Kind are written as strings.
func AppendDict(dst []byte, pairs ...Pair) []byte {
	dst = append(dst, tagDictStart)
	for _, p := range pairs {
		dst = appendString(dst, p.Key)
		switch p.Value.Kind {
		case KindInt:
			dst = append(dst, byte(KindInt))
			dst = appendUint32(dst, uint32(p.Value.Int))
		default:
			dst = appendString(dst, p.Value.Str)
		}
	}
	return append(dst, tagDictEnd)
}

// StringPairs builds string pairs from alternating keys and values. A trailing key without a value is dropped.
func StringPairs(kv ...string) []Pair {
	res := make([]Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		res = append(res, Pair{Key: kv[i], Value: StringValue(kv[i+1])})
	}
	return res
}

func appendString(dst []byte, s string) []byte {
	dst = append(dst, byte(KindString))
	dst = appendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

func appendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}
