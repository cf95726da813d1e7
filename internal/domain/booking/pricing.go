package booking

import "math"

const DefaultDuration = 60

// TotalPrice is the hourly rate prorated over the duration in minutes,
// rounded to cents.
func TotalPrice(pricePerHour float64, durationMin int) float64 {
	return Round2(pricePerHour * float64(durationMin) / 60)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
