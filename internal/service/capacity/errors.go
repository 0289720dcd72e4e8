package capacity

import "errors"

// ErrCount возвращается, когда счётчик бронирований не удалось прочитать
var ErrCount = errors.New("capacity: failed to count reservations")
