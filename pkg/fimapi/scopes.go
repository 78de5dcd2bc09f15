package fimapi

import "fmt"

// Scope is a permission an OAuth client can be granted. Tokens only allow the
// operations their scopes cover; a call outside the granted scopes fails with
// a Forbidden/MissingScope API error.
type Scope int

const (
	// ScopeWriteBlogPosts allows an app to post blog posts.
	ScopeWriteBlogPosts Scope = iota
	// ScopeReadBookshelves allows an app to read non-public bookshelves.
	ScopeReadBookshelves
	// ScopeWriteBookshelves allows an app to create and edit bookshelves.
	ScopeWriteBookshelves
	// ScopeReadBookshelfItems allows an app to read items from a private bookshelf.
	ScopeReadBookshelfItems
	// ScopeWriteBookshelfItems allows an app to add and remove bookshelf items.
	ScopeWriteBookshelfItems
	// ScopeReadPMs allows an app to read a user's private messages.
	ScopeReadPMs
	// ScopeWritePMs allows an app to send private messages as a user.
	ScopeWritePMs
	// ScopeWriteFollowers allows an app to follow and unfollow users.
	ScopeWriteFollowers
	// ScopeReadStories allows an app to read unpublished chapters and stories.
	//
	// NOTE: upstream registers this capability under the wire name
	// "read_followers", colliding with the documented read-followers scope;
	// the canonical "read_stories" token is not recognized. This mirrors the
	// behavior the live API exhibits and is intentionally not corrected here.
	ScopeReadStories
	// ScopeWriteStories allows an app to write, edit, publish, and delete stories.
	ScopeWriteStories
	// ScopeWriteComments allows an app to write, edit, and delete comments.
	ScopeWriteComments
	// ScopeReadUser allows an app to read private account information.
	ScopeReadUser
	// ScopeWriteUser allows an app to modify account information.
	ScopeWriteUser
	// ScopeReadChapterRead allows an app to see which chapters a user has read.
	ScopeReadChapterRead
	// ScopeWriteChapterRead allows an app to mark chapters as read or unread.
	ScopeWriteChapterRead
)

var scopeNames = map[Scope]string{
	ScopeWriteBlogPosts:      "write_blog_posts",
	ScopeReadBookshelves:     "read_bookshelves",
	ScopeWriteBookshelves:    "write_bookshelves",
	ScopeReadBookshelfItems:  "read_bookshelf_items",
	ScopeWriteBookshelfItems: "write_bookshelf_items",
	ScopeReadPMs:             "read_pms",
	ScopeWritePMs:            "write_pms",
	ScopeWriteFollowers:      "write_followers",
	ScopeReadStories:         "read_followers",
	ScopeWriteStories:        "write_stories",
	ScopeWriteComments:       "write_comments",
	ScopeReadUser:            "read_user",
	ScopeWriteUser:           "write_user",
	ScopeReadChapterRead:     "read_chapter_read",
	ScopeWriteChapterRead:    "write_chapter_read",
}

var scopeDescriptions = map[Scope]string{
	ScopeWriteBlogPosts:      "post blog posts",
	ScopeReadBookshelves:     "read non-public bookshelves",
	ScopeWriteBookshelves:    "create and edit bookshelves",
	ScopeReadBookshelfItems:  "read items from a private bookshelf",
	ScopeWriteBookshelfItems: "add and remove bookshelf items",
	ScopeReadPMs:             "read private messages",
	ScopeWritePMs:            "send private messages",
	ScopeWriteFollowers:      "follow and unfollow users",
	ScopeReadStories:         "read unpublished chapters and stories",
	ScopeWriteStories:        "write, edit, publish, and delete stories",
	ScopeWriteComments:       "write, edit, and delete comments",
	ScopeReadUser:            "read private account information",
	ScopeWriteUser:           "modify account information",
	ScopeReadChapterRead:     "see which chapters a user has read",
	ScopeWriteChapterRead:    "mark chapters as read or unread",
}

var scopesByName = func() map[string]Scope {
	byName := make(map[string]Scope, len(scopeNames))
	for scope, name := range scopeNames {
		byName[name] = scope
	}

	return byName
}()

// String returns the wire name the API recognizes for the scope.
func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}

	return fmt.Sprintf("scope(%d)", int(s))
}

// Description returns a short human-readable summary of what the scope allows.
func (s Scope) Description() string {
	if desc, ok := scopeDescriptions[s]; ok {
		return desc
	}

	return "unknown scope"
}

// ParseScopeError reports a string that is not a recognized scope name.
type ParseScopeError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseScopeError) Error() string {
	return fmt.Sprintf("could not parse %q as a FimFiction API scope", e.Input)
}

// ParseScope maps a wire name back to its Scope. Unknown names fail with a
// *ParseScopeError carrying the input.
func ParseScope(name string) (Scope, error) {
	scope, ok := scopesByName[name]
	if !ok {
		return 0, &ParseScopeError{Input: name}
	}

	return scope, nil
}

// Scopes returns every scope in declaration order.
func Scopes() []Scope {
	return []Scope{
		ScopeWriteBlogPosts,
		ScopeReadBookshelves,
		ScopeWriteBookshelves,
		ScopeReadBookshelfItems,
		ScopeWriteBookshelfItems,
		ScopeReadPMs,
		ScopeWritePMs,
		ScopeWriteFollowers,
		ScopeReadStories,
		ScopeWriteStories,
		ScopeWriteComments,
		ScopeReadUser,
		ScopeWriteUser,
		ScopeReadChapterRead,
		ScopeWriteChapterRead,
	}
}
