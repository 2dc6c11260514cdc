package coach

import "math/rand/v2"

// MotivationPhrases are shown after a day is marked done.
var MotivationPhrases = []string{
	"Kerja Bagus! Terus Jaga Konsistensi!",
	"Selesai! Satu langkah lebih dekat ke tujuanmu!",
	"Luar Biasa! Tubuhmu akan berterima kasih.",
	"Mantap! Kamu sedang membangun kebiasaan yang hebat!",
	"Sukses! Dedikasi ini yang akan membawa perubahan!",
}

// RandomMotivation picks one phrase uniformly at random.
func RandomMotivation() string {
	return MotivationPhrases[rand.IntN(len(MotivationPhrases))]
}
