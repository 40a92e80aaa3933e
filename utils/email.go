package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML mail through the configured SMTP account.
func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), "Travel Booking")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// BookingMail renders the layout shared by booking notifications: greeting,
// lead line, a detail list and an optional closing note.
func BookingMail(name, lead string, details [][2]string, note string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Dear %s,</p>", name)
	fmt.Fprintf(&b, "<p>%s</p>", lead)
	b.WriteString("<ul>")
	for _, d := range details {
		fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>", d[0], d[1])
	}
	b.WriteString("</ul>")
	if note != "" {
		fmt.Fprintf(&b, "<p>%s</p>", note)
	}
	b.WriteString("<p>Best regards,</p><p>The Travel Booking Team</p>")
	return b.String()
}
