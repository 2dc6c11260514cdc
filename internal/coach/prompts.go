package coach

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitai/internal/domain"
)

var (
	// ErrProfileRequired is returned when a plan intent is built without a profile.
	ErrProfileRequired = errors.New("profile required for this intent")
	// ErrUnknownIntent is returned for intents the builder does not know.
	ErrUnknownIntent = errors.New("unknown intent")
)

// goalPhrases maps each goal to the phrase used in one prompt context.
type goalPhrases map[domain.Goal]string

func (m goalPhrases) phrase(g domain.Goal, fallback string) string {
	if p, ok := m[g]; ok {
		return p
	}
	return fallback
}

var (
	workoutGoals = goalPhrases{
		domain.GoalCutting:       "menurunkan lemak tubuh",
		domain.GoalBulking:       "menambah massa otot",
		domain.GoalRecomposition: "rekomposisi tubuh (mengurangi lemak dan menambah otot)",
	}
	nutritionGoals = goalPhrases{
		domain.GoalCutting:       "defisit kalori untuk menurunkan lemak",
		domain.GoalBulking:       "surplus kalori untuk menambah massa otot",
		domain.GoalRecomposition: "maintenance kalori dengan fokus protein tinggi",
	}
	sleepGoals = goalPhrases{
		domain.GoalCutting:       "menjaga pemulihan selama menurunkan lemak tubuh",
		domain.GoalBulking:       "memaksimalkan pemulihan untuk menambah massa otot",
		domain.GoalRecomposition: "pemulihan seimbang untuk rekomposisi tubuh",
	}
	scheduleGoals = goalPhrases{
		domain.GoalCutting:       "menurunkan lemak tubuh dengan cardio lebih intensif",
		domain.GoalBulking:       "menambah massa otot dengan fokus strength training",
		domain.GoalRecomposition: "kombinasi strength training dan cardio moderat",
	}
)

// BuildPrompt returns the instruction text for intent. Plan and schedule
// intents need a profile; chat accepts a nil profile.
func BuildPrompt(intent domain.Intent, p *domain.Profile, message string) (string, error) {
	if intent != domain.IntentChat && p == nil {
		return "", fmt.Errorf("%s: %w", intent, ErrProfileRequired)
	}
	switch intent {
	case domain.IntentWorkoutPlan:
		return WorkoutPrompt(*p), nil
	case domain.IntentNutritionPlan:
		return NutritionPrompt(*p), nil
	case domain.IntentSleepPlan:
		return SleepPrompt(*p), nil
	case domain.IntentWeeklySchedule:
		return SchedulePrompt(p.Goal), nil
	case domain.IntentChat:
		return ChatPrompt(message, p), nil
	default:
		return "", fmt.Errorf("%q: %w", intent, ErrUnknownIntent)
	}
}

func writeMetrics(b *strings.Builder, p domain.Profile) {
	fmt.Fprintf(b, "- Berat badan: %d kg\n", p.Weight)
	fmt.Fprintf(b, "- Persentase lemak tubuh: %d%%\n", p.BodyFat)
	fmt.Fprintf(b, "- Persentase massa otot: %d%%\n", p.MuscleMass)
	fmt.Fprintf(b, "- Usia: %d tahun\n", p.Age)
}

// WorkoutPrompt asks for a seven-day plan with one labeled section per day.
func WorkoutPrompt(p domain.Profile) string {
	var b strings.Builder
	b.WriteString("Sebagai ahli fitness profesional, buatkan program latihan mingguan untuk:\n")
	writeMetrics(&b, p)
	fmt.Fprintf(&b, "- Tujuan: %s\n\n", workoutGoals.phrase(p.Goal, "umum"))
	b.WriteString(`Berikan jadwal latihan 7 hari dengan format yang detail:
SENIN: [Nama Latihan] - [3-4 latihan spesifik dengan set x rep]
SELASA: [Nama Latihan] - [3-4 latihan spesifik dengan set x rep]
RABU: [Istirahat Aktif/Recovery] - [Aktivitas ringan]
KAMIS: [Nama Latihan] - [3-4 latihan spesifik dengan set x rep]
JUMAT: [Nama Latihan] - [3-4 latihan spesifik dengan set x rep]
SABTU: [Cardio/HIIT] - [Jenis dan durasi]
MINGGU: [Istirahat Total] - [Recovery tips]

Sesuaikan intensitas dengan kondisi fisik dan tujuan yang ingin dicapai.
`)
	return b.String()
}

// NutritionPrompt asks for a numbered nutrition guideline.
func NutritionPrompt(p domain.Profile) string {
	var b strings.Builder
	b.WriteString("Sebagai ahli nutrisi olahraga, buatkan panduan pola makan untuk:\n")
	writeMetrics(&b, p)
	fmt.Fprintf(&b, "- Tujuan: %s\n\n", nutritionGoals.phrase(p.Goal, "umum"))
	b.WriteString(`Berikan rekomendasi:
1. Target kalori harian
2. Pembagian makronutrien (protein, karbohidrat, lemak)
3. Contoh makanan yang direkomendasikan
4. Tips pola makan

Sesuaikan dengan kondisi tubuh dan tujuan yang ingin dicapai.
`)
	return b.String()
}

// SleepPrompt asks for a numbered sleep and recovery guideline. Its wording
// stays clear of the workout and nutrition keywords so an offline reply
// resolves to the sleep guideline.
func SleepPrompt(p domain.Profile) string {
	var b strings.Builder
	b.WriteString("Sebagai ahli sleep health dan recovery, buatkan panduan pola tidur untuk:\n")
	writeMetrics(&b, p)
	b.WriteString("- Aktivitas: Program fitness intensif\n")
	fmt.Fprintf(&b, "- Tujuan: Optimalisasi recovery dan performa, %s\n\n", sleepGoals.phrase(p.Goal, "umum"))
	b.WriteString(`Berikan rekomendasi:
1. Durasi tidur ideal
2. Jadwal tidur yang optimal
3. Tips untuk meningkatkan kualitas tidur
4. Hubungan tidur dengan recovery otot

Berikan panduan praktis dan mudah diterapkan.
`)
	return b.String()
}

// SchedulePrompt asks for one short "Day: label" line per day.
func SchedulePrompt(g domain.Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sebagai ahli fitness, buatkan jadwal mingguan singkat untuk tujuan %s.\n\n",
		scheduleGoals.phrase(g, "fitness umum"))
	b.WriteString("Berikan dalam format:\n")
	for _, d := range domain.Week {
		fmt.Fprintf(&b, "%s: [Nama latihan singkat]\n", d.Name)
	}
	b.WriteString("\nContoh: \"Latihan Dada & Trisep\" atau \"Cardio HIIT\" atau \"Istirahat Aktif\"\n")
	return b.String()
}

// ChatPrompt wraps a user question. When p is non-nil a context block with
// the user's metrics and goal is included.
func ChatPrompt(message string, p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("Anda adalah FitAI, asisten fitness profesional yang ramah dan berpengetahuan luas.\n")
	if p != nil {
		b.WriteString("\nContext pengguna:\n")
		fmt.Fprintf(&b, "- Berat: %dkg, Lemak: %d%%, Otot: %d%%\n", p.Weight, p.BodyFat, p.MuscleMass)
		fmt.Fprintf(&b, "- Usia: %d tahun, Tujuan: %s\n", p.Age, p.Goal)
	}
	fmt.Fprintf(&b, "\nPertanyaan pengguna: \"%s\"\n\n", message)
	b.WriteString(`Berikan jawaban yang:
- Relevan dengan konteks fitness/kesehatan
- Praktis dan mudah dipahami
- Menggunakan bahasa Indonesia yang natural
- Singkat tapi informatif (maksimal 100 kata)
- Mendorong pola hidup sehat

Jika pertanyaan di luar topik fitness, arahkan kembali ke topik kesehatan dengan sopan.
`)
	return b.String()
}
