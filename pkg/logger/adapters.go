package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// writerAdapter lets other packages that expect an io.Writer (the standard
// library logger, Gin) emit through our structured logger instead.
type writerAdapter struct {
	l    Interface
	emit func(Interface, string)
}

func (w writerAdapter) Write(p []byte) (int, error) {
	w.emit(w.l, string(bytes.TrimRight(p, "\r\n")))

	return len(p), nil
}

// SetupStdLog routes standard library log output through the structured logger.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(writerAdapter{l: l, emit: func(l Interface, msg string) { l.Warn("%s", msg) }})
}

// SetupGin routes Gin's default writers through the structured logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = writerAdapter{l: l, emit: func(l Interface, msg string) { l.Info("%s", msg) }}
	gin.DefaultErrorWriter = writerAdapter{l: l, emit: func(l Interface, msg string) { l.Error(msg) }}
}
