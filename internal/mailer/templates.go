package mailer

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

type emailTemplate struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

var activationTemplate = emailTemplate{
	html: htmltemplate.Must(htmltemplate.New("activation").Parse(`<html>
<body>
  <p>Hi {{.FullName}},</p>
  <p>Thanks for registering. Click the link below to activate your account:</p>
  <p><a href="{{.Link}}">Activate my account</a></p>
  <p>If you did not create an account, you can ignore this email.</p>
  <p>&copy; {{.CurrentYear}} Swimming Project</p>
</body>
</html>`)),
	text: texttemplate.Must(texttemplate.New("activation").Parse(`Hi {{.FullName}},

Thanks for registering. Open the link below to activate your account:

{{.Link}}

If you did not create an account, you can ignore this email.
`)),
}

var passwordResetTemplate = emailTemplate{
	html: htmltemplate.Must(htmltemplate.New("reset").Parse(`<html>
<body>
  <p>Hi {{.Username}},</p>
  <p>We received a request to reset your password. Use the link below to choose a new one:</p>
  <p><a href="{{.Link}}">Reset my password</a></p>
  <p>If you did not request a reset, you can ignore this email.</p>
  <p>&copy; {{.CurrentYear}} Swimming Project</p>
</body>
</html>`)),
	text: texttemplate.Must(texttemplate.New("reset").Parse(`Hi {{.Username}},

We received a request to reset your password. Open the link below to choose a new one:

{{.Link}}

If you did not request a reset, you can ignore this email.
`)),
}
