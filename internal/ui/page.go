package ui

// PageID identifies one of the mutually exclusive site pages. Exactly one
// page is active at any time.
type PageID int

const (
	PageHome PageID = iota
	PageAbout
	PageResume
	PageContact
)

// pageOrder is the nav bar order.
var pageOrder = []PageID{PageHome, PageAbout, PageResume, PageContact}

func (p PageID) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageAbout:
		return "about"
	case PageResume:
		return "resume"
	case PageContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Title returns the nav bar label for the page.
func (p PageID) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageAbout:
		return "About"
	case PageResume:
		return "Resume"
	case PageContact:
		return "Contact"
	default:
		return "?"
	}
}

// known reports whether p names a real page. Switching to an unknown page
// is a silent no-op.
func (p PageID) known() bool {
	return p >= PageHome && p <= PageContact
}
