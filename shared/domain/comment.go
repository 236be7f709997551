package domain

type Comment struct {
	Id         CommentId `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    DateTime  `json:"created"`
	ItemId     ItemId    `json:"-"`
	AuthorId   UserId    `json:"-"`
}

type CommentCreationData struct {
	Text     string
	ItemId   ItemId
	AuthorId UserId
	Created  DateTime
}
