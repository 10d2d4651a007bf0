package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Method records the checked function name under the key "method".
func Method(name string) slog.Attr {
	return slog.String("method", name)
}

// Param records a parameter name under the key "param".
// An empty name yields an empty Attr.
func Param(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("param", name)
}

// Contract records a contract name under the key "contract".
func Contract(name string) slog.Attr {
	return slog.String("contract", name)
}

// Value records a checked value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
