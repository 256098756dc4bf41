package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	blogRepo         *BlogRepo
	tagRepo          *TagRepo
	authorRepo       *AuthorRepo
	logoRepo         *LogoRepo
	announcementRepo *AnnouncementRepo
	eventRepo        *EventRepo
	highlightRepo    *HighlightRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		blogRepo:         NewBlogRepo(db),
		tagRepo:          NewTagRepo(db),
		authorRepo:       NewAuthorRepo(db),
		logoRepo:         NewLogoRepo(db),
		announcementRepo: NewAnnouncementRepo(db),
		eventRepo:        NewEventRepo(db),
		highlightRepo:    NewHighlightRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) AuthorRepo() *AuthorRepo {
	return d.authorRepo
}

func (d Database) LogoRepo() *LogoRepo {
	return d.logoRepo
}

func (d Database) AnnouncementRepo() *AnnouncementRepo {
	return d.announcementRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) HighlightRepo() *HighlightRepo {
	return d.highlightRepo
}
