package transformers

import (
	"errors"
	"fmt"
	"time"

	"github.com/greenmaskio/valuemask/pkg/generators"
)

const (
	YearTruncateName        = "year"
	MonthTruncateName       = "month"
	DayTruncateName         = "day"
	HourTruncateName        = "hour"
	MinuteTruncateName      = "minute"
	SecondTruncateName      = "second"
	MillisecondTruncateName = "millisecond"
	MicrosecondTruncateName = "microsecond"
	NanosecondTruncateName  = "nanosecond"
)

const (
	YearTruncateValue = iota + 1
	MonthTruncateValue
	DayTruncateValue
	HourTruncateValue
	MinuteTruncateValue
	SecondTruncateValue
	MillisecondTruncateValue
	MicrosecondTruncateValue
	NanosecondTruncateValue
)

const TimestampTransformerByteLength = 16

var ErrWrongLimits = errors.New("wrong limits")

type DateTruncater struct {
	part int
}

func NewDateTruncater(truncatePartName string) (*DateTruncater, error) {
	part, err := getTruncatePartValueByName(truncatePartName)
	if err != nil {
		return nil, err
	}

	return &DateTruncater{
		part: part,
	}, nil
}

func (dt *DateTruncater) Truncate(t time.Time) time.Time {
	var month time.Month = 1
	var day = 1
	var year, hour, minute, second, nano int
	switch dt.part {
	case NanosecondTruncateValue:
		nano = t.Nanosecond()
	case MicrosecondTruncateValue:
		nano = t.Nanosecond() / int(time.Microsecond) * int(time.Microsecond)
	case MillisecondTruncateValue:
		nano = t.Nanosecond() / int(time.Millisecond) * int(time.Millisecond)
	}
	switch dt.part {
	case NanosecondTruncateValue, MicrosecondTruncateValue, MillisecondTruncateValue, SecondTruncateValue:
		second = t.Second()
		fallthrough
	case MinuteTruncateValue:
		minute = t.Minute()
		fallthrough
	case HourTruncateValue:
		hour = t.Hour()
		fallthrough
	case DayTruncateValue:
		day = t.Day()
		fallthrough
	case MonthTruncateValue:
		month = t.Month()
		fallthrough
	case YearTruncateValue:
		year = t.Year()
	}
	return time.Date(year, month, day, hour, minute, second, nano, t.Location())
}

func getTruncatePartValueByName(truncateName string) (truncate int, err error) {
	switch truncateName {
	case NanosecondTruncateName:
		truncate = NanosecondTruncateValue
	case MicrosecondTruncateName:
		truncate = MicrosecondTruncateValue
	case MillisecondTruncateName:
		truncate = MillisecondTruncateValue
	case SecondTruncateName:
		truncate = SecondTruncateValue
	case MinuteTruncateName:
		truncate = MinuteTruncateValue
	case HourTruncateName:
		truncate = HourTruncateValue
	case DayTruncateName:
		truncate = DayTruncateValue
	case MonthTruncateName:
		truncate = MonthTruncateValue
	case YearTruncateName:
		truncate = YearTruncateValue
	default:
		return 0, fmt.Errorf("unknown truncate part %s", truncateName)
	}
	return
}

// TimestampLimiter - projects arbitrary 64-bit numbers into the half-open interval [minDate, maxDate)
type TimestampLimiter struct {
	minSec  int64
	minNano int64
	// span - count of whole seconds between minDate and maxDate
	span    uint64
	maxDate time.Time
}

func NewTimestampLimiter(minDate, maxDate time.Time) (*TimestampLimiter, error) {
	if !minDate.Before(maxDate) {
		return nil, ErrWrongLimits
	}
	span := uint64(maxDate.Unix() - minDate.Unix())
	if span == 0 {
		span = 1
	}
	return &TimestampLimiter{
		minSec:  minDate.Unix(),
		minNano: int64(minDate.Nanosecond()),
		span:    span,
		maxDate: maxDate,
	}, nil
}

// Limit - returns a timestamp in [minDate, maxDate). Both inputs are expected to be uniformly distributed
func (dl *TimestampLimiter) Limit(sec, nano uint64) time.Time {
	s := dl.minSec + int64(sec%dl.span)
	res := time.Unix(s, dl.minNano+int64(nano%uint64(time.Second)))
	if !res.Before(dl.maxDate) {
		// the last second of the interval is partial when the limits have a nanosecond part
		res = time.Unix(s, dl.minNano)
	}
	return res
}

// Timestamp - generates a random timestamp limited by TimestampLimiter. The generated value is returned
// in UTC
type Timestamp struct {
	truncater  *DateTruncater
	generator  generators.Generator
	byteLength int
	limiter    *TimestampLimiter
}

func NewRandomTimestamp(truncatePart string, limiter *TimestampLimiter) (*Timestamp, error) {
	if limiter == nil {
		return nil, errors.New("limiter is required")
	}

	var dt *DateTruncater
	var err error

	if truncatePart != "" {
		dt, err = NewDateTruncater(truncatePart)
		if err != nil {
			return nil, err
		}
	}

	return &Timestamp{
		truncater:  dt,
		limiter:    limiter,
		byteLength: TimestampTransformerByteLength,
	}, nil
}

func (d *Timestamp) Transform(data []byte) (time.Time, error) {
	if d.generator == nil {
		return time.Time{}, errors.New("generator is not set")
	}
	genBytes, err := d.generator.Generate(data)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to generate random bytes: %w", err)
	}

	sec := generators.BuildUint64FromBytes(genBytes[:8])
	nano := generators.BuildUint64FromBytes(genBytes[8:16])

	res := d.limiter.Limit(sec, nano).UTC()

	if d.truncater != nil {
		res = d.truncater.Truncate(res)
	}

	return res, nil
}

func (d *Timestamp) GetRequiredGeneratorByteLength() int {
	return d.byteLength
}

func (d *Timestamp) SetGenerator(g generators.Generator) error {
	if g.Size() < d.byteLength {
		return fmt.Errorf("requested byte length (%d) higher than generator can produce (%d)", d.byteLength, g.Size())
	}
	d.generator = g
	return nil
}
