package contract

import (
	"math"
	"reflect"
	"strconv"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type numberKind uint8

const (
	signedNumber numberKind = iota
	unsignedNumber
	floatNumber
)

// number holds any Go numeric value without losing integer precision.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func numberOf(value any) (number, bool) {
	if value == nil {
		return number{}, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: signedNumber, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: unsignedNumber, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: floatNumber, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	}
	return n.f
}

// compare returns -1, 0 or 1. ok is false when either side is NaN.
func (n number) compare(o number) (result int, ok bool) {
	if n.kind == floatNumber || o.kind == floatNumber {
		a, b := n.float(), o.float()
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, false
		}
		return cmp3(a < b, a > b), true
	}

	switch {
	case n.kind == signedNumber && o.kind == signedNumber:
		return cmp3(n.i < o.i, n.i > o.i), true
	case n.kind == unsignedNumber && o.kind == unsignedNumber:
		return cmp3(n.u < o.u, n.u > o.u), true
	case n.kind == signedNumber:
		if n.i < 0 {
			return -1, true
		}
		a := uint64(n.i)
		return cmp3(a < o.u, a > o.u), true
	default:
		if o.i < 0 {
			return 1, true
		}
		b := uint64(o.i)
		return cmp3(n.u < b, n.u > b), true
	}
}

func (n number) String() string {
	switch n.kind {
	case signedNumber:
		return strconv.FormatInt(n.i, 10)
	case unsignedNumber:
		return strconv.FormatUint(n.u, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

var zeroNumber = number{kind: signedNumber}
