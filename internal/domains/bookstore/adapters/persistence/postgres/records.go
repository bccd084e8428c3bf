package postgres

import "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"

type authorRecord struct {
	ID        int64 `gorm:"primaryKey"`
	FirstName string
	LastName  string `gorm:"index"`
	Country   string
}

func (authorRecord) TableName() string { return "author" }

func toAuthorRecord(author *domain.Author) authorRecord {
	return authorRecord{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Country:   author.Country,
	}
}

func (r authorRecord) toDomain() *domain.Author {
	return &domain.Author{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Country:   r.Country,
	}
}

type bookRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"index"`
	ISBN      string `gorm:"column:isbn;index"`
	Publisher string
	AuthorID  *int64
}

func (bookRecord) TableName() string { return "book" }

func toBookRecord(book *domain.Book) bookRecord {
	return bookRecord{
		ID:        book.ID,
		Title:     book.Title,
		ISBN:      book.ISBN,
		Publisher: book.Publisher,
		AuthorID:  book.AuthorID,
	}
}

func (r bookRecord) toDomain() *domain.Book {
	return &domain.Book{
		ID:        r.ID,
		Title:     r.Title,
		ISBN:      r.ISBN,
		Publisher: r.Publisher,
		AuthorID:  r.AuthorID,
	}
}
