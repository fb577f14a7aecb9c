package users

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ProfileImage says where a user's profile picture lives: a URL into object
// storage, or nowhere. The zero value means no image. Binary payloads are
// deliberately not supported; the backend serves profile pictures from a CDN.
type ProfileImage struct {
	url string
}

// NoImage returns the absent profile image.
func NoImage() ProfileImage {
	return ProfileImage{}
}

// ImageByURL returns a profile image referenced by URL.
func ImageByURL(url string) ProfileImage {
	return ProfileImage{url: url}
}

// URL returns the image URL and whether an image is set.
func (p ProfileImage) URL() (string, bool) {
	return p.url, p.url != ""
}

// pfpDoc is the stored shape: both fields null when no image is set.
type pfpDoc struct {
	URL     *string `bson:"url"`
	Storage *string `bson:"storage"`
}

func (p ProfileImage) MarshalBSONValue() (bsontype.Type, []byte, error) {
	var d pfpDoc
	if p.url != "" {
		storage := "url"
		d = pfpDoc{URL: &p.url, Storage: &storage}
	}
	return bson.MarshalValue(d)
}

func (p *ProfileImage) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var d pfpDoc
	if err := bson.UnmarshalValue(t, data, &d); err != nil {
		return err
	}
	if d.URL != nil {
		p.url = *d.URL
	} else {
		p.url = ""
	}
	return nil
}
