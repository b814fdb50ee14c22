package mailer

import (
	"fmt"
	"log"

	"amt-blocking-backend/config"
	"amt-blocking-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email ke management saat ada keputusan PHK.
// Jika SMTP_HOST tidak di-set, notifikasi dimatikan dan proses BAP
// berjalan seperti biasa.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host:     config.GetEnv("SMTP_HOST", ""),
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USER", ""),
		password: config.GetEnv("SMTP_PASS", ""),
		from:     config.GetEnv("SMTP_FROM", "noreply@amt-blocking.local"),
		to:       config.GetEnv("SMTP_NOTIFY_TO", ""),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.to != ""
}

// KirimNotifikasiPHK memberi tahu alamat pengawas bahwa BAP dengan keputusan
// PHK sudah tercatat. Dipanggil fire-and-forget dari handler; error cukup
// di-log karena email bukan bagian dari transaksi BAP.
func (m *Mailer) KirimNotifikasiPHK(kasus *model.Kasus) {
	if !m.Enabled() {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("[AMT Blocking] Keputusan PHK - %s", kasus.NamaAMT))
	msg.SetBody("text/plain", fmt.Sprintf(
		"BAP dengan keputusan PHK telah tercatat.\n\n"+
			"Nomor Kasus  : %s\n"+
			"Nama AMT     : %s (%s)\n"+
			"Lokasi       : %s\n"+
			"Pelanggaran  : %s\n"+
			"Tanggal BAP  : %s\n"+
			"Catatan      : %s\n",
		kasus.NomorKasus, kasus.NamaAMT, kasus.RoleAMT, kasus.LokasiAMT,
		kasus.NamaPelanggaran, kasus.TanggalBAP, kasus.Catatan,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Gagal mengirim notifikasi PHK:", err)
	}
}
