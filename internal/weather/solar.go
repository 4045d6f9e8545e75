package weather

// Period is a solar period derived from sunrise/sunset and the local time.
type Period string

const (
	PeriodDawn  Period = "dawn"
	PeriodDay   Period = "day"
	PeriodDusk  Period = "dusk"
	PeriodNight Period = "night"
)

// Window sizes around sunrise and sunset, in seconds.
const (
	dawnBefore = 1800
	dawnAfter  = 900
	duskBefore = 900
	duskAfter  = 1800
)

// ClassifyPeriod places now in one of the four solar periods. All arguments are
// UTC epoch seconds except offset, which is added to each of them.
func ClassifyPeriod(now, offset, sunrise, sunset int64) Period {
	now += offset
	sunrise += offset
	sunset += offset

	dawnStart := sunrise - dawnBefore
	dawnEnd := sunrise + dawnAfter
	duskStart := sunset - duskBefore
	duskEnd := sunset + duskAfter

	switch {
	case now >= dawnStart && now <= dawnEnd:
		return PeriodDawn
	case now > dawnEnd && now < duskStart:
		return PeriodDay
	case now >= duskStart && now <= duskEnd:
		return PeriodDusk
	default:
		return PeriodNight
	}
}

// PeriodOf classifies the snapshot's own timestamp. A missing snapshot or one
// without sun times is night.
func PeriodOf(s *Snapshot) Period {
	if s == nil || !s.HasSunTimes() {
		return PeriodNight
	}
	return ClassifyPeriod(s.Timestamp, s.TimezoneOffset, s.Sunrise, s.Sunset)
}

// Light collapses the period to the two buckets used for artwork:
// dawn counts as day, dusk as night.
func (p Period) Light() Period {
	switch p {
	case PeriodDawn, PeriodDay:
		return PeriodDay
	default:
		return PeriodNight
	}
}

// ImagePeriodOf is the two-bucket period of the snapshot.
func ImagePeriodOf(s *Snapshot) Period {
	return PeriodOf(s).Light()
}
