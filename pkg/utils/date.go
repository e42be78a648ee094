package utils

import "time"

const (
	yearMonthDayLayout = "20060102"
	hourLayout         = "15"
)

// FormatDate converte milissegundos Unix em YYYYMMDD, sempre em UTC
func FormatDate(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format(yearMonthDayLayout)
}

// FormatHour converte milissegundos Unix na hora com dois dígitos no fuso informado.
// Com loc nil usa o fuso local do processo, o que pode divergir do dia calculado por FormatDate.
func FormatHour(epochMillis int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(epochMillis).In(loc).Format(hourLayout)
}
