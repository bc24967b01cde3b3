package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AgeUnit selects which representation of an Age is authoritative.
type AgeUnit string

const (
	AgeYearsMonths AgeUnit = "years-months"
	AgeWeeks       AgeUnit = "weeks"
)

const (
	// WeeksPerYear is used when converting calendar years to weeks.
	WeeksPerYear = 52.0
	// WeeksPerMonth approximates 52/12.
	WeeksPerMonth = 4.33
	// WeeksPerYearExact is the mean Gregorian year in weeks and is used when
	// an age in weeks is turned into fractional years.
	WeeksPerYearExact = 52.1775
	MonthsPerYear     = 12
)

// ParseAgeUnit normalizes an age unit name.
func ParseAgeUnit(s string) (AgeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "years-months", "years", "ym", "":
		return AgeYearsMonths, nil
	case "weeks", "w":
		return AgeWeeks, nil
	}
	return "", fmt.Errorf("unknown age unit: %q", s)
}

// Valid reports whether u is a known age unit.
func (u AgeUnit) Valid() bool {
	return u == AgeYearsMonths || u == AgeWeeks
}

// Age is a child's age in exactly one representation, selected by Unit.
type Age struct {
	Unit   AgeUnit `json:"unit"`
	Years  int     `json:"years,omitempty"`
	Months int     `json:"months,omitempty"`
	Weeks  int     `json:"weeks,omitempty"`
}

// YearsMonths builds an Age in the years+months representation.
func YearsMonths(years, months int) Age {
	return Age{Unit: AgeYearsMonths, Years: years, Months: months}
}

// Weeks builds an Age in the weeks representation.
func Weeks(weeks int) Age {
	return Age{Unit: AgeWeeks, Weeks: weeks}
}

// InYears returns the age as fractional years.
func (a Age) InYears() float64 {
	return AgeToYears(a)
}

// In returns the age converted to the given representation.
func (a Age) In(unit AgeUnit) Age {
	if a.Unit == unit {
		return a
	}
	if unit == AgeWeeks {
		return Weeks(YearsMonthsToWeeks(a.Years, a.Months))
	}
	return YearsMonths(WeeksToYearsMonths(a.Weeks))
}

// IsZero reports whether no age has been entered.
func (a Age) IsZero() bool {
	if a.Unit == AgeWeeks {
		return a.Weeks == 0
	}
	return a.Years == 0 && a.Months == 0
}

// YearsMonthsToWeeks converts an age to whole weeks.
func YearsMonthsToWeeks(years, months int) int {
	return int(RoundTo(float64(years)*WeeksPerYear+float64(months)*WeeksPerMonth, 0))
}

// WeeksToYearsMonths is the lossy inverse of YearsMonthsToWeeks. A month count
// that rounds up to 12 carries into the next year, so 103 weeks is 2y0m rather
// than the 1y12m the plain floor/round formula gives. The total age is the same.
func WeeksToYearsMonths(weeks int) (years, months int) {
	if weeks <= 0 {
		return 0, 0
	}
	totalMonths := float64(weeks) / WeeksPerMonth
	years = int(math.Floor(totalMonths / MonthsPerYear))
	months = int(RoundTo(math.Mod(totalMonths, MonthsPerYear), 0))
	if months == MonthsPerYear {
		years++
		months = 0
	}
	return years, months
}

// AgeToYears returns an age as fractional years.
func AgeToYears(a Age) float64 {
	if a.Unit == AgeWeeks {
		return float64(a.Weeks) / WeeksPerYearExact
	}
	return float64(a.Years) + float64(a.Months)/MonthsPerYear
}

// ParseAge reads the compact string encoding used by older form revisions:
// "years,months" or "years" for AgeYearsMonths, and a week count for AgeWeeks.
// Parts that are not numbers count as zero.
func ParseAge(value string, unit AgeUnit) Age {
	if unit == AgeWeeks {
		return Weeks(atoiOrZero(value))
	}

	years, months, _ := strings.Cut(value, ",")
	return YearsMonths(atoiOrZero(years), atoiOrZero(months))
}

// FormatAge renders an Age in the compact string encoding read by ParseAge.
// A zero age renders as "".
func FormatAge(a Age) string {
	if a.IsZero() {
		return ""
	}
	if a.Unit == AgeWeeks {
		return strconv.Itoa(a.Weeks)
	}
	if a.Months == 0 {
		return strconv.Itoa(a.Years)
	}
	return strconv.Itoa(a.Years) + "," + strconv.Itoa(a.Months)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
