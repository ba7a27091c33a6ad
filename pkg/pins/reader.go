package pins

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// reader is a forward-only cursor over a caller-owned buffer. Every read
// checks the remaining length first and leaves pos untouched on failure,
// so pos is always the offset of the read that failed.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, ErrTruncated
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	return math.Float32frombits(v), err
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	return math.Float64frombits(v), err
}

// bool32 reads an archive bool, which is stored as a full uint32.
func (r *reader) bool32() (bool, error) {
	v, err := r.u32()
	return v != 0, err
}

func (r *reader) guid() (uuid.UUID, error) {
	var id uuid.UUID
	b, err := r.take(len(id))
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}
