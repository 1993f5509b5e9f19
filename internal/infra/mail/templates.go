package mail

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// resetData feeds the password reset templates.
type resetData struct {
	Name     string
	ResetURL string
}

// orderLine is one rendered receipt row.
type orderLine struct {
	ProductID int64
	Quantity  int
	Price     string
}

// orderData feeds the order confirmation templates.
type orderData struct {
	Name    string
	OrderID string
	Total   string
	Lines   []orderLine
}

//nolint:gochecknoglobals
var (
	resetHTML = htmltemplate.Must(htmltemplate.New("reset_html").Parse(`<p>Hi {{.Name}},</p>
<p>We received a request to reset your password. The link below is valid for one hour.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>`))

	resetText = texttemplate.Must(texttemplate.New("reset_text").Parse(`Hi {{.Name}},

Reset your password using this link (valid for one hour):
{{.ResetURL}}
`))

	orderHTML = htmltemplate.Must(htmltemplate.New("order_html").Parse(`<p>Hi {{.Name}},</p>
<p>Your payment was successful! Thank you for your order. Your order ID is <strong>{{.OrderID}}</strong>.</p>
<table>
<tr><th>Product</th><th>Quantity</th><th>Price</th></tr>
{{range .Lines}}<tr><td>#{{.ProductID}}</td><td>{{.Quantity}}</td><td>${{.Price}}</td></tr>
{{end}}</table>
<p>Total: <strong>${{.Total}}</strong></p>`))

	orderText = texttemplate.Must(texttemplate.New("order_text").Parse(`Thank you for your order. Your order ID is {{.OrderID}}.
{{range .Lines}}- product #{{.ProductID}} x{{.Quantity}} ${{.Price}}
{{end}}Total: ${{.Total}}
`))
)
