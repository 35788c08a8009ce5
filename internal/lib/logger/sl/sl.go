package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Stage creates a slog.Attr naming the report stage being executed.
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}
