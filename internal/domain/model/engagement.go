package model

// TargetKind identifies which entity type a reaction is attached to.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
)

func (k TargetKind) IsValid() bool {
	return k == TargetVideo || k == TargetComment
}

func (k TargetKind) String() string {
	return string(k)
}

// Reaction is a single actor's stance on a target. An actor holds at most
// one reaction per target, so like and dislike are mutually exclusive by
// construction.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

func (r Reaction) String() string {
	return string(r)
}

// EngagementCounts is the aggregate like/dislike tally for one target.
type EngagementCounts struct {
	Likes    int64
	Dislikes int64
}

// EngagementStatus is one actor's current stance on a target. Liked and
// Disliked are never both true.
type EngagementStatus struct {
	Liked    bool
	Disliked bool
}
