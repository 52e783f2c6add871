package models

import "time"

// BlogPost is a CMS article shown on the public insights pages.
type BlogPost struct {
	PostID    string    `bson:"postid" json:"postid"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	Excerpt   string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content   string    `bson:"content" json:"content"`
	Thumb     string    `bson:"thumb,omitempty" json:"thumb,omitempty"`
	Published bool      `bson:"published" json:"published"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GalleryImage is a photo in the public gallery.
type GalleryImage struct {
	ImageID   string    `bson:"imageid" json:"imageid"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	URL       string    `bson:"url" json:"url"`
	ThumbURL  string    `bson:"thumbUrl,omitempty" json:"thumbUrl,omitempty"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactMessage is a submission from the public contact form. Messages are
// stored for the admin screens; no mail is sent from here.
type ContactMessage struct {
	MessageID string    `bson:"messageid" json:"messageid"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
