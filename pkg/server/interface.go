/*
Package server implements msgpack IPC for word lookups.

The server reads msgpack-encoded requests from stdin and writes one msgpack
response per request to stdout. Requests are handled one at a time, in
arrival order, against a single loaded word list.

# IPC

Every request carries an ID and an op. The remaining fields depend on the op:

	{"id": "r1", "op": "using", "charset": "act", "min": 2, "must": "at"}
	{"id": "r2", "op": "search", "pattern": "ca.", "contains": true}
	{"id": "r3", "op": "wordle", "template": ".a.e", "somewhere": "t", "eliminated": "g"}
	{"id": "r4", "op": "keyword", "clues": ["c.t", "d.g"], "all": false}
	{"id": "r5", "op": "health"}

Word lookups answer with the matches in word list order. Count is the total
number of matches; Words holds at most limit of them:

	{"id": "r3", "words": ["late", "tale"], "count": 2, "t": 87}

Keyword requests answer with each solution and the clue word that supplied
every letter:

	{"id": "r4", "solutions": [{"keyword": "ai", "letters": [{"clue": "c.t", "letter": "a", "source": "cat"}, ...]}], "count": 1, "t": 40}

Failures use a short error frame. Code 400 is bad input, 404 an
unsatisfiable keyword query and 500 anything else:

	{"id": "r4", "e": "no keyword satisfies the clues", "c": 404}

Timings ("t") are in microseconds.
*/
package server

// Request is a single lookup request.
type Request struct {
	ID string `msgpack:"id"`
	Op string `msgpack:"op"`

	Charset string `msgpack:"charset,omitempty"`
	Min     int    `msgpack:"min,omitempty"`
	Must    string `msgpack:"must,omitempty"`

	Pattern  string `msgpack:"pattern,omitempty"`
	Contains bool   `msgpack:"contains,omitempty"`

	Template   string `msgpack:"template,omitempty"`
	Somewhere  string `msgpack:"somewhere,omitempty"`
	Eliminated string `msgpack:"eliminated,omitempty"`

	Clues []string `msgpack:"clues,omitempty"`
	All   bool     `msgpack:"all,omitempty"`

	Limit int `msgpack:"limit,omitempty"`
}

// WordsResponse answers using, search and wordle requests.
type WordsResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"words"`
	Count     int      `msgpack:"count"`
	TimeTaken int64    `msgpack:"t"`
}

// KeywordLetter is one resolved clue.
type KeywordLetter struct {
	Clue   string `msgpack:"clue"`
	Letter string `msgpack:"letter"`
	Source string `msgpack:"source"`
}

// KeywordSolution is one keyword and how it was spelled.
type KeywordSolution struct {
	Keyword string          `msgpack:"keyword"`
	Letters []KeywordLetter `msgpack:"letters"`
}

// KeywordResponse answers keyword requests.
type KeywordResponse struct {
	ID        string            `msgpack:"id"`
	Solutions []KeywordSolution `msgpack:"solutions"`
	Count     int               `msgpack:"count"`
	TimeTaken int64             `msgpack:"t"`
}

// StatusResponse answers health requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
