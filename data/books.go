package data

import "time"

// BookUser is the minimal owner summary the remote API embeds in a book.
type BookUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Book defines a book as returned by the remote API. Optional numeric fields
// are zero when the API omits them.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn,omitempty"`
	Description   string    `json:"description,omitempty"`
	PublishedYear int       `json:"publishedYear,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	Pages         int       `json:"pages,omitempty"`
	Language      string    `json:"language,omitempty"`
	CoverImage    string    `json:"coverImage,omitempty"`
	Available     bool      `json:"available"`
	CategoryID    int64     `json:"categoryId"`
	UserID        int64     `json:"userId"`
	Category      *Category `json:"category,omitempty"`
	User          *BookUser `json:"user,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EditableBy reports whether user may edit or delete the book: owners and
// admins can, anonymous visitors can't.
func (b *Book) EditableBy(user *User) bool {
	if b == nil || user == nil {
		return false
	}
	return user.ID == b.UserID || user.IsAdmin()
}

// CategoryName returns the embedded category name, falling back to the
// static registry when the API didn't embed one.
func (b *Book) CategoryName() string {
	if b.Category != nil && b.Category.Name != "" {
		return b.Category.Name
	}
	if c, ok := LookupStaticCategory(b.CategoryID); ok {
		return c.Name
	}
	return ""
}
