package dto

// LoginReq only checks presence; a malformed email is just a wrong one.
type LoginReq struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required"`
}

type RegisterReq struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FilterReq updates the criteria; absent fields are left unchanged.
type FilterReq struct {
	Category *string `json:"category,omitempty" validate:"omitempty,category_filter"`
	Query    *string `json:"query,omitempty" validate:"omitempty,max=200"`
}

// EventReq is the organizer form. Organizer name and id come from the
// session, never from the body.
type EventReq struct {
	Title            string `json:"title" validate:"required,max=200"`
	ShortDescription string `json:"short_description" validate:"required,max=100"`
	Description      string `json:"description" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time" validate:"required,hhmm"`
	Location         string `json:"location" validate:"required,max=200"`
	Category         string `json:"category" validate:"required,category"`
	Image            string `json:"image" validate:"required,url"`
	TicketLink       string `json:"ticket_link,omitempty" validate:"omitempty,url"`
}
