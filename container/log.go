package container

import (
	"sync/atomic"

	"github.com/bnclabs/golog"
)

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled,
// call this function with "bst" or "self" or "all" to log tree
// mutations.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "bst", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Errorf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func tracef(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Tracef(format, v...)
	}
}
