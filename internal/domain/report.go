package domain

import (
	"math"
	"time"
)

// CommissionSummary комиссия агентства за период
// Учитываются только неотмененные бронирования, период по началу проведения
type CommissionSummary struct {
	CompanyID     int64
	CompanyName   string
	BookingsCount int
	PeopleCount   int
	Revenue       float64
	Commission    float64
}

// GuideLoad занятость гида в интервале
type GuideLoad struct {
	Guide       Guide
	Assignments int
	Leading     int
}

// IsFree returns true if the guide has no assignments in the interval
func (l *GuideLoad) IsFree() bool {
	return l.Assignments == 0
}

// CanLead returns true if the guide can take a party of the given size
// Guides without a max party size take any party
func (g *Guide) CanLead(partySize int) bool {
	return g.MaxPartySize == nil || *g.MaxPartySize >= partySize
}

// Commission returns the agency fee for the booking rounded to cents
func (b *Booking) Commission() float64 {
	if b.CompanyID == nil || b.CommissionPercentage == nil {
		return 0
	}
	return RoundMoney(b.TotalPrice * *b.CommissionPercentage / 100)
}

// RoundMoney округляет сумму до копеек
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// DayBounds returns [start of day, start of next day) for the date in loc
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
