package domain

// Day pairs the storage key used for completion tracking with the
// canonical day name used in generated schedules.
type Day struct {
	Key  string
	Name string
}

// Week is the canonical Monday-first week.
var Week = [7]Day{
	{Key: "mon", Name: "Senin"},
	{Key: "tue", Name: "Selasa"},
	{Key: "wed", Name: "Rabu"},
	{Key: "thu", Name: "Kamis"},
	{Key: "fri", Name: "Jumat"},
	{Key: "sat", Name: "Sabtu"},
	{Key: "sun", Name: "Minggu"},
}

// IsDayKey reports whether key is one of the seven canonical day keys.
func IsDayKey(key string) bool {
	for _, d := range Week {
		if d.Key == key {
			return true
		}
	}
	return false
}

// DayName returns the canonical day name for key, or "" if unknown.
func DayName(key string) string {
	for _, d := range Week {
		if d.Key == key {
			return d.Name
		}
	}
	return ""
}
