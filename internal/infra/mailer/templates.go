package mailer

import "html/template"

// One template per notification kind. The active confirmation references the
// inline QR attachment by content id.
var bodyTemplates = template.Must(template.New("notifications").Parse(`
{{define "active-confirmation"}}
<p>Dear {{.FullName}},</p>
<p>Your reservation{{if .PerformanceTitle}} for <strong>{{.PerformanceTitle}}</strong>{{end}} is confirmed.</p>
<ul>
  <li>Reservation code: <strong>{{.ReservationCode}}</strong></li>
  <li>Date: {{.Date}} at {{.Time}}</li>
  <li>Seats: {{.Seats}}</li>
</ul>
<p>Show this code at the box office:</p>
<p><img src="cid:qr.png" alt="{{.ReservationCode}}"></p>
{{end}}

{{define "pending-with-conflict"}}
<p>Dear {{.FullName}},</p>
<p>We received your reservation{{if .PerformanceTitle}} for <strong>{{.PerformanceTitle}}</strong>{{end}}, but it is pending review because another reservation already exists for the same date and time.</p>
<ul>
  <li>New reservation code: <strong>{{.ReservationCode}}</strong></li>
  <li>Date: {{.Date}} at {{.Time}}</li>
  <li>Seats: {{.Seats}}</li>
</ul>
<p>Existing reservation:</p>
<ul>
  <li>Code: {{.ExistingCode}}</li>
  <li>Date: {{.ExistingDate}} at {{.ExistingTime}}</li>
  <li>Seats: {{.ExistingSeats}}</li>
</ul>
<p>The box office will contact you to resolve the conflict.</p>
{{end}}

{{define "cancellation"}}
<p>Dear {{.FullName}},</p>
<p>Your reservation{{if .PerformanceTitle}} for <strong>{{.PerformanceTitle}}</strong>{{end}} has been canceled.</p>
<ul>
  <li>Reservation code: {{.ReservationCode}}</li>
  <li>Date: {{.Date}} at {{.Time}}</li>
</ul>
<p>If this was unexpected, please contact the box office.</p>
{{end}}
`))

var subjects = map[string]string{
	"active-confirmation":   "Your reservation is confirmed",
	"pending-with-conflict": "Your reservation is pending review",
	"cancellation":          "Your reservation has been canceled",
}
