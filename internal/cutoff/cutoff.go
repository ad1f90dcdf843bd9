package cutoff

import (
	"errors"
	"time"
)

// Değişiklik pencereleri:
//   - yarının öğün durumu: bugün 20:00'a kadar
//   - gelecek ayın yemek tercihi: bu ayın son günü 18:00'a kadar
//
// Tüm fonksiyonlar "now" parametresi alır; duvar saatini içeriden okumazlar.

const (
	tomorrowEditHour = 20
	prefEditHour     = 18
)

// ErrCutoffPassed: son saat geçtikten sonra denenen değişiklik.
// Kayıt değiştirilmeden çağırana döner.
var ErrCutoffPassed = errors.New("değişiklik için son saat geçti")

// DateOf: zamanın gün kısmı (00:00)
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Tomorrow: now'a göre yarının günü
func Tomorrow(now time.Time) time.Time {
	return DateOf(now).AddDate(0, 0, 1)
}

// TomorrowCutoff: yarın için düzenlemelerin kapandığı an (bugün 20:00)
func TomorrowCutoff(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), tomorrowEditHour, 0, 0, 0, now.Location())
}

// TomorrowEditAllowed: yarının öğün durumu hâlâ değiştirilebilir mi.
// Tam 20:00:00 anında artık izin yok.
func TomorrowEditAllowed(now time.Time) bool {
	return now.Before(TomorrowCutoff(now))
}

// CanEditDate: verilen gün için öğün durumu değişikliğine izin var mı.
// Geçmiş ve bugün her zaman kilitli; yarın 20:00 kuralına tabi;
// daha ileri günler serbest.
func CanEditDate(now, date time.Time) bool {
	day := DateOf(date)
	tomorrow := Tomorrow(now)

	if day.Before(tomorrow) {
		return false
	}
	if day.Equal(tomorrow) {
		return TomorrowEditAllowed(now)
	}
	return true
}

// NextMonthPrefCutoff: gelecek ay tercihi için son an
// (içinde bulunulan ayın son günü 18:00)
func NextMonthPrefCutoff(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), prefEditHour, 0, 0, 0, now.Location())
}

// NextMonthPrefAllowed: gelecek ayın tercihi hâlâ değiştirilebilir mi
func NextMonthPrefAllowed(now time.Time) bool {
	return now.Before(NextMonthPrefCutoff(now))
}
