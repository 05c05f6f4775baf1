// Package anthropic lists Claude models through the Anthropic Models API.
//
// Each record carries both the model id and its display label, for
// example id "claude-opus-4-1-20250805" with label "Claude Opus 4.1".
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	records, err := client.ListModels(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range records {
//	    fmt.Printf("%s (%s)\n", r.ID, r.DisplayName)
//	}
package anthropic
