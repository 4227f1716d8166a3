package client

import "microblog/internal/model"

// The local feed mirrors server order from the last full load and is
// mutated in exactly two ways, both applied only after the server has
// confirmed the operation: prepend a created post, remove a deleted one.
// Both preserve the relative order of untouched elements.

func prependPost(feed []model.PostWithAuthor, post model.PostWithAuthor) []model.PostWithAuthor {
	out := make([]model.PostWithAuthor, 0, len(feed)+1)
	out = append(out, post)
	return append(out, feed...)
}

func removePost(feed []model.PostWithAuthor, postID int64) []model.PostWithAuthor {
	out := make([]model.PostWithAuthor, 0, len(feed))
	for _, p := range feed {
		if p.ID != postID {
			out = append(out, p)
		}
	}
	return out
}
