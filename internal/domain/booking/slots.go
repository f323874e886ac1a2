package booking

// Fixed half-hour slot labels, afternoon into past-midnight. The wizard
// offers exactly these; the store keeps the label verbatim.
var TimeSlots = []string{
	"3:00 PM",
	"3:30 PM",
	"4:00 PM",
	"4:30 PM",
	"5:00 PM",
	"5:30 PM",
	"6:00 PM",
	"6:30 PM",
	"7:00 PM",
	"7:30 PM",
	"8:00 PM",
	"8:30 PM",
	"9:00 PM",
	"9:30 PM",
	"10:00 PM",
	"10:30 PM",
	"11:00 PM",
	"11:30 PM",
	"12:00 AM",
}

// Services offered by the store, as displayed to the customer.
var Services = []string{
	"فحص نظر عام",
	"تركيب العدسات اللاصقة",
	"اختيار الاطار",
	"تعديل العدسات",
	"صيانة",
}

var slotIndex = func() map[string]int {
	m := make(map[string]int, len(TimeSlots))
	for i, s := range TimeSlots {
		m[s] = i
	}
	return m
}()

// SlotIndex returns the canonical position of a slot label, or
// len(TimeSlots) for labels outside the fixed set.
func SlotIndex(label string) int {
	if i, ok := slotIndex[label]; ok {
		return i
	}
	return len(TimeSlots)
}
