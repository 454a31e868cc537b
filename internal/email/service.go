package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"gymbooking/internal/logger"
	"gymbooking/internal/metrics"
)

const (
	KindBookingConfirmed = "booking_confirmed"
	KindBookingCancelled = "booking_cancelled"
	KindContactReceived  = "contact_received"
)

const queueKey = "emails"

type EmailJob struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

// Send enqueues a message for background delivery. The caller returns to its
// client without waiting on SMTP; delivery happens in the Start worker.
func (s *Service) Send(ctx context.Context, kind, to, name, subject, body string) error {
	job := EmailJob{
		Kind:    kind,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after 3 attempts", job.To)
			metrics.RecordEmail(job.Kind, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Kind, "success")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), queueKey+":failed", data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// BookingDetails is the payload for booking confirmation and cancellation
// messages. It carries everything the templates mention so callers do not
// reach back into the database from the send path.
type BookingDetails struct {
	FirstName       string
	Email           string
	Reference       string
	ClassName       string
	Instructor      string
	StartTime       time.Time
	DurationMinutes int
	SpecialRequests string
}

func (s *Service) SendBookingConfirmation(ctx context.Context, d BookingDetails) error {
	requests := d.SpecialRequests
	if requests == "" {
		requests = "None"
	}

	subject := "Booking Confirmation - " + d.ClassName
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed!

Booking Reference: %s
Class: %s
Time: %s
Duration: %d minutes
Instructor: %s
Special Requests: %s

Please arrive 10 minutes early and bring a water bottle and towel.
See you there!

- %s`,
		d.FirstName,
		d.Reference,
		d.ClassName,
		d.StartTime.Format("January 2, 2006 at 3:04 PM"),
		d.DurationMinutes,
		d.Instructor,
		requests,
		s.fromName,
	)

	return s.Send(ctx, KindBookingConfirmed, d.Email, d.FirstName, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, d BookingDetails) error {
	subject := "Booking Cancelled - " + d.ClassName
	body := fmt.Sprintf(`Hi %s,

Your booking for %s on %s has been cancelled successfully.

We hope to see you again soon!

- %s`,
		d.FirstName,
		d.ClassName,
		d.StartTime.Format("January 2, 2006 at 3:04 PM"),
		s.fromName,
	)

	return s.Send(ctx, KindBookingCancelled, d.Email, d.FirstName, subject, body)
}

func (s *Service) SendContactReceived(ctx context.Context, to, name, message string) error {
	subject := "We received your message"
	body := fmt.Sprintf(`Hello %s,

Thanks for reaching out! We've received your message and will get back to you within 24-48 hours.

"%s"

Best regards,
%s`,
		name,
		message,
		s.fromName,
	)

	return s.Send(ctx, KindContactReceived, to, name, subject, body)
}
