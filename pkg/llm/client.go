package llm

type RewriteInput struct {
	Title   string
	Summary string
}

type RewriteResult struct {
	PlainSummary string
	ModelUsed    string
}

// Rewriter turns an official bill summary into plain language. Rewrites are
// best-effort: callers drop the result on error and never fail a request
// over it.
type Rewriter interface {
	Rewrite(input RewriteInput) (*RewriteResult, error)
}
