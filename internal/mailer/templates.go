package mailer

import (
	"fmt"
	"time"

	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

// StageEmail builds the subject and HTML body for a stage-change
// notification. Rejection gets a thank-you message instead of the
// advancement one.
func StageEmail(company, candidateName, vacancyTitle string, stage pipeline.Stage) (subject, html string) {
	if stage == pipeline.StageRejected {
		subject = fmt.Sprintf("%s - Thank You for Your Application", company)
		html = rejectionBody(company, candidateName, vacancyTitle)
		return subject, html
	}
	subject = fmt.Sprintf("%s - Update on Your Application", company)
	html = advanceBody(company, candidateName, vacancyTitle, stage.DisplayName())
	return subject, html
}

func advanceBody(company, name, vacancy, stageName string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px;">
  <h1 style="color: #FFD000;">%s</h1>
  <h2>Selection Process Update</h2>
  <p>Hello, <strong>%s</strong>!</p>
  <p>Good news about your application for the <strong>%s</strong> position!</p>
  <div style="border-left: 4px solid #FFD000; padding: 20px; margin: 25px 0;">
    <p>You have advanced to the stage: <strong>%s</strong></p>
  </div>
  <p>Our team will be in touch soon with the next steps.</p>
  <p>Best regards,<br><strong>%s Team</strong></p>
  %s
</div>`, company, name, vacancy, stageName, company, footer(company))
}

func rejectionBody(company, name, vacancy string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px;">
  <h1 style="color: #FFD000;">%s</h1>
  <h2>Thank You for Taking Part</h2>
  <p>Hello, <strong>%s</strong>!</p>
  <p>We sincerely appreciate your interest in joining the %s team and the time you dedicated to the selection process for the <strong>%s</strong> position.</p>
  <div style="border-left: 4px solid #FFD000; padding: 20px; margin: 25px 0;">
    <p>After careful review, we have decided to move forward with other candidates for this opportunity.
    Your profile will stay in our talent pool for future openings that match your qualifications.</p>
  </div>
  <p>We wish you every success in your professional journey.</p>
  <p>Best regards,<br><strong>%s Team</strong></p>
  %s
</div>`, company, name, company, vacancy, company, footer(company))
}

func footer(company string) string {
	return fmt.Sprintf(`<div style="border-top: 2px solid #333; margin-top: 40px; padding-top: 20px; text-align: center;">
    <p style="font-size: 12px; color: #666;">© %d %s - All rights reserved</p>
    <p style="font-size: 11px; color: #888; font-style: italic;">This is an automated email. Please do not reply.</p>
  </div>`, time.Now().Year(), company)
}
