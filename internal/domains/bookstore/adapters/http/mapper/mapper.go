package mapper

import "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"

// AuthorRequest is accepted by author create and update.
type AuthorRequest struct {
	FirstName string `json:"firstName" binding:"max=255"`
	LastName  string `json:"lastName" binding:"required,max=255"`
	Country   string `json:"country,omitempty" binding:"max=255"`
}

// Author is returned for author lookups.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country,omitempty"`
}

// BookRequest is accepted by book create and update.
type BookRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	ISBN      string `json:"isbn,omitempty" binding:"max=255"`
	Publisher string `json:"publisher,omitempty" binding:"max=255"`
	AuthorID  *int64 `json:"authorId,omitempty"`
}

// Book is returned for book lookups.
type Book struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ISBN      string `json:"isbn,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	AuthorID  *int64 `json:"authorId,omitempty"`
}

func ToDomainAuthor(id int64, req AuthorRequest) *domain.Author {
	return &domain.Author{ID: id, FirstName: req.FirstName, LastName: req.LastName, Country: req.Country}
}

func FromDomainAuthor(author *domain.Author) Author {
	if author == nil {
		return Author{}
	}
	return Author{ID: author.ID, FirstName: author.FirstName, LastName: author.LastName, Country: author.Country}
}

func ToDomainBook(id int64, req BookRequest) *domain.Book {
	return &domain.Book{ID: id, Title: req.Title, ISBN: req.ISBN, Publisher: req.Publisher, AuthorID: req.AuthorID}
}

func FromDomainBook(book *domain.Book) Book {
	if book == nil {
		return Book{}
	}
	return Book{ID: book.ID, Title: book.Title, ISBN: book.ISBN, Publisher: book.Publisher, AuthorID: book.AuthorID}
}
