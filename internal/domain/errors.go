package domain

import "errors"

// ErrInvalidWorkingWindow возвращается при нарушении инвариантов рабочего окна
// (день недели вне [0,6], fromWeekday > toWeekday, fromTime >= toTime)
var ErrInvalidWorkingWindow = errors.New("domain: invalid working window")
