package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint32(key string, value uint32) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Analysis field helpers

func Component(name string) Field {
	return String("component", name)
}

func Asset(name string) Field {
	return String("asset", name)
}

func Function(name string) Field {
	return String("function", name)
}

func Graph(name string) Field {
	return String("graph", name)
}

func Node(name string) Field {
	return String("node", name)
}

func Pin(name string) Field {
	return String("pin", name)
}

// DecodeField names the serialized field a decoder was reading.
func DecodeField(name string) Field {
	return String("field", name)
}

func Offset(off int) Field {
	return Int("offset", off)
}

func Block(id int) Field {
	return Int("block", id)
}

func Count(n int) Field {
	return Int("count", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
