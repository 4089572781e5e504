// Package doctrans provides an AI-powered structured-document translation engine.
//
// Doctrans extracts translatable text from structured documents (DOCX, XLIFF,
// HTML, Markdown), batches the segments, enriches each batch with exact matches
// from a translation memory, sends the batches to an AI provider, and writes
// the realigned results back into the original document structure.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/VerbaLabs/doctrans"
//	    "github.com/VerbaLabs/doctrans/adapter"
//	    "github.com/VerbaLabs/doctrans/provider"
//	    "github.com/VerbaLabs/doctrans/tm"
//	)
//
//	func main() {
//	    // Create service caller
//	    caller := provider.NewOpenAICaller(provider.OpenAIConfig{
//	        APIKey: os.Getenv("DOCTRANS_API_KEY"),
//	    })
//
//	    // Load translation memory
//	    memory := tm.NewMemoryIndex()
//	    summary, _ := tm.LoadDir(memory, "corpus/")
//	    log.Printf("memory: %d sources, %d pairs", summary.Sources, summary.Pairs)
//
//	    // Create translator
//	    t := doctrans.New("ru", "uk", caller,
//	        doctrans.WithMemory(memory),
//	        doctrans.WithAdapter(adapter.NewXLIFFAdapter()),
//	    )
//
//	    // Translate a document
//	    content, _ := os.ReadFile("manual.xlf")
//	    result, err := t.Translate(context.Background(), content, "xliff")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    os.WriteFile("manual_translated.xlf", result.Content, 0o644)
//	}
package doctrans
