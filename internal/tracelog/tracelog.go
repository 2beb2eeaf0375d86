// Package tracelog is a minimal debug-trace gate: off by default, cheap
// to check, never allocates when disabled.
package tracelog

// Enabled gates all trace output. Left false in production builds; flip
// it from a test or from board bring-up code, never from the hot path.
var Enabled = false

// Printf checks Enabled and, if set, formats and prints — so producer
// and consumer code can log register-like values without building
// strings when tracing is off.
func Printf(format string, args ...any) {
	if !Enabled {
		return
	}
	println(sprintf(format, args...))
}

// sprintf is a tiny, allocation-light formatter covering the subset of
// verbs this package needs (%d, %s, %v, %t) so tracelog has no fmt
// dependency on targets where fmt pulls in reflection-heavy code.
func sprintf(format string, args ...any) string {
	out := make([]byte, 0, len(format)+16*len(args))
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i == len(format)-1 {
			out = append(out, c)
			continue
		}
		i++
		verb := format[i]
		var arg any
		if ai < len(args) {
			arg = args[ai]
			ai++
		}
		switch verb {
		case 'd', 'v', 't':
			out = append(out, []byte(toString(arg))...)
		case 's':
			if s, ok := arg.(string); ok {
				out = append(out, s...)
			} else {
				out = append(out, []byte(toString(arg))...)
			}
		case '%':
			out = append(out, '%')
			ai--
		default:
			out = append(out, '%', verb)
			ai--
		}
	}
	return string(out)
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return itoa(int64(x))
	case int16:
		return itoa(int64(x))
	case int32:
		return itoa(int64(x))
	case int64:
		return itoa(x)
	case uint8:
		return itoa(int64(x))
	case uint16:
		return itoa(int64(x))
	case uint32:
		return itoa(int64(x))
	case uint64:
		return itoa(int64(x))
	default:
		return "?"
	}
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
