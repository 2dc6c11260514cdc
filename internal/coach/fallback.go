package coach

import "strings"

const workoutFallback = `SENIN: Latihan Dada & Trisep
- Bench Press: 4 set x 8-10 repetisi
- Incline Dumbbell Press: 3 set x 10-12 repetisi
- Tricep Dips: 3 set x 12-15 repetisi
- Push-ups: 2 set hingga gagal

SELASA: Latihan Punggung & Bisep
- Pull-ups: 4 set x 6-8 repetisi
- Barbell Row: 4 set x 8-10 repetisi
- Hammer Curls: 3 set x 12-15 repetisi
- Lat Pulldown: 3 set x 10-12 repetisi

RABU: Istirahat Aktif
- Jalan kaki 30 menit
- Stretching ringan
- Yoga atau meditasi

KAMIS: Latihan Kaki & Glutes
- Squats: 4 set x 10-12 repetisi
- Romanian Deadlift: 3 set x 8-10 repetisi
- Lunges: 3 set x 12 per kaki
- Calf Raises: 3 set x 15-20 repetisi

JUMAT: Latihan Bahu & Core
- Overhead Press: 4 set x 8-10 repetisi
- Lateral Raises: 3 set x 12-15 repetisi
- Plank: 3 set x 60 detik
- Russian Twists: 3 set x 20 repetisi

SABTU: Cardio HIIT
- 20 menit HIIT training
- 5 menit warm-up, 10 menit interval, 5 menit cool-down

MINGGU: Istirahat Total
- Recovery penuh
- Hidrasi yang cukup
- Persiapan untuk minggu depan`

const nutritionFallback = `TARGET KALORI HARIAN: 2000-2200 kkal

PEMBAGIAN MAKRONUTRIEN:
- Protein: 25-30% (125-165g)
- Karbohidrat: 40-45% (200-248g)
- Lemak: 25-30% (56-73g)

MAKANAN YANG DIREKOMENDASIKAN:
Protein: Dada ayam, ikan salmon, telur, tahu, tempe
Karbohidrat: Nasi merah, oats, ubi, quinoa
Lemak sehat: Alpukat, kacang-kacangan, minyak zaitun

POLA MAKAN HARIAN:
- Sarapan: Oats + protein powder + buah
- Snack pagi: Yogurt Greek + kacang almond
- Makan siang: Nasi merah + dada ayam + sayuran
- Snack sore: Protein shake + pisang
- Makan malam: Ikan + ubi + brokoli
- Sebelum tidur: Casein protein (opsional)

TIPS PENTING:
- Minum air 2.5-3 liter per hari
- Makan setiap 3-4 jam
- Hindari makanan olahan berlebih
- Konsumsi protein dalam setiap makan`

const sleepFallback = `DURASI TIDUR IDEAL: 7-9 jam per malam

JADWAL TIDUR OPTIMAL:
- Tidur: 22:00 - 06:00 WIB
- Konsisten setiap hari, termasuk weekend

RUTINITAS SEBELUM TIDUR:
- 21:00: Matikan gadget dan lampu terang
- 21:15: Mandi air hangat atau baca buku
- 21:30: Meditasi atau latihan pernapasan
- 22:00: Tidur dalam kamar gelap dan sejuk

TIPS KUALITAS TIDUR:
- Suhu kamar 18-22°C
- Kamar gelap total (blackout curtains)
- Tidak ada suara bising
- Kasur dan bantal nyaman
- Hindari kafein setelah jam 15:00
- Tidak makan berat 3 jam sebelum tidur

MANFAAT UNTUK FITNESS:
- Pemulihan otot optimal
- Produksi growth hormone meningkat
- Pengaturan hormon lapar (leptin/ghrelin)
- Energi dan fokus latihan lebih baik
- Sistem imun lebih kuat

JIKA SULIT TIDUR:
- Progressive muscle relaxation
- Teknik pernapasan 4-7-8
- White noise atau musik instrumental
- Hindari olahraga 4 jam sebelum tidur`

const (
	proteinFallback = "Protein sangat penting untuk membangun dan memperbaiki otot. Konsumsi 1.6-2.2g protein per kg berat badan. Sumber terbaik: dada ayam, ikan, telur, Greek yogurt, dan quinoa."
	cardioFallback  = "Cardio membantu kesehatan jantung dan pembakaran lemak. Lakukan 150 menit cardio sedang per minggu atau 75 menit cardio intensif. HIIT sangat efektif untuk pembakaran lemak."
	warmupFallback  = "Pemanasan wajib 5-10 menit sebelum latihan untuk mencegah cedera. Mulai dengan gerakan ringan, lalu dynamic stretching, dan aktivasi otot target."
	defaultFallback = "Terima kasih atas pertanyaannya! Saya siap membantu dengan topik fitness, nutrisi, dan kesehatan. Silakan tanyakan hal spesifik yang ingin Anda ketahui."
)

type fallbackRule struct {
	keywords []string
	text     string
}

// fallbackRules are tested in order; the first rule with a matching
// keyword wins.
var fallbackRules = []fallbackRule{
	{keywords: []string{"program latihan", "jadwal latihan"}, text: workoutFallback},
	{keywords: []string{"nutrisi", "pola makan"}, text: nutritionFallback},
	{keywords: []string{"tidur", "istirahat"}, text: sleepFallback},
	{keywords: []string{"protein"}, text: proteinFallback},
	{keywords: []string{"cardio"}, text: cardioFallback},
	{keywords: []string{"pemanasan"}, text: warmupFallback},
}

// FallbackResponse returns the pre-authored answer for prompt using
// case-insensitive keyword matching. It is deterministic and always
// returns non-empty text.
func FallbackResponse(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.text
			}
		}
	}
	return defaultFallback
}
