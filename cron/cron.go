package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// StartCronJobs initializes and starts the background scheduler: stale
// pending invoices get cancelled, and confirmed bookings get a check-in
// reminder.
func StartCronJobs() {
	c := cron.New()

	// Every 30 minutes, cancel pending invoices whose check-in has passed
	_, err := c.AddFunc("*/30 * * * *", expireStalePendingInvoices)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	// Every hour, remind customers with a check-in in the next 24 hours
	_, err = c.AddFunc("0 * * * *", sendCheckInReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for invoice expiry and reminders")
}

// expireStalePendingInvoices cancels bookings that were never confirmed
// before their check-in date.
func expireStalePendingInvoices() {
	result := db.DB.Model(&models.Invoice{}).
		Where("status = ? AND check_in < ?", models.InvoicePending, time.Now()).
		Update("status", models.InvoiceCancelled)
	if result.Error != nil {
		log.Printf("Error expiring pending invoices: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending invoices", result.RowsAffected)
	}
}

// sendCheckInReminders mails customers whose confirmed booking starts within
// the next day.
func sendCheckInReminders() {
	var invoices []models.Invoice
	now := time.Now()
	window := now.Add(24 * time.Hour)

	err := db.DB.Preload("Customer").Preload("Service").
		Where("status = ? AND check_in BETWEEN ? AND ?", models.InvoiceConfirmed, now, window).
		Find(&invoices).Error
	if err != nil {
		log.Printf("Error fetching invoices for reminders: %v", err)
		return
	}

	for _, invoice := range invoices {
		if err := sendReminderEmail(&invoice); err != nil {
			log.Printf("Failed to send reminder for invoice %d: %v", invoice.ID, err)
			continue
		}
		log.Printf("Sent reminder for invoice %d to %s", invoice.ID, invoice.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(invoice *models.Invoice) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", invoice.InvoiceNumber)
	body := utils.BookingMail(invoice.Customer.Name,
		"This is a reminder for your upcoming booking.",
		[][2]string{
			{"Service", invoice.Service.Name},
			{"Check-in", invoice.CheckIn.Format("2006-01-02 15:04:05")},
			{"Check-out", invoice.CheckOut.Format("2006-01-02 15:04:05")},
			{"Guests", fmt.Sprintf("%d", invoice.GuestCount)},
			{"Status", string(invoice.Status)},
		},
		"If you need to cancel, contact us as soon as possible.")

	return utils.SendEmail(invoice.Customer.Email, subject, body)
}
