// Package lister dispatches a model listing to exactly one provider.
//
// Each provider is a [Source] variant that knows which environment
// variable holds its credential and how to build its client:
//
//	Variant     Credential
//	OpenAI      OPENAI_API_KEY
//	GoogleAI    GOOGLE_API_KEY
//	VertexAI    GOOGLE_CLOUD_PROJECT + Application Default Credentials
//	Anthropic   ANTHROPIC_API_KEY
//	XAI         XAI_API_KEY
//
// A missing credential yields an [lsmodels.AuthError] before any request
// is made. Provider failures are returned as [lsmodels.ProviderError]
// with the vendor's message intact; nothing is retried.
//
//	l := lister.New()
//	listing, err := l.List(ctx, lister.Anthropic{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	listing.WriteTo(os.Stdout)
package lister
