package ingestion

import (
	"fmt"
	"os"

	"github.com/poiesic/indexit/core"
)

// sampleSentences is the built-in corpus used when sample loading is
// enabled and no documents file is configured.
var sampleSentences = []string{
	"The Eiffel Tower was completed in 1889 for the Paris World's Fair.",
	"Honey never spoils because its low moisture content resists bacteria.",
	"The Great Barrier Reef is the largest living structure on Earth.",
	"Octopuses have three hearts and blue, copper-based blood.",
	"The Trans-Siberian Railway spans eight time zones across Russia.",
	"Bamboo can grow almost a meter in a single day.",
	"The Library of Alexandria was one of the largest libraries of the ancient world.",
	"Lightning strikes the Earth about eight million times per day.",
	"The Mariana Trench is the deepest known point in the ocean.",
	"Saturn's rings are made mostly of ice particles and rocky debris.",
	"The printing press spread across Europe within decades of its invention.",
	"Glaciers store about three quarters of the world's fresh water.",
}

// sampleNamespace tags every built-in sample document so they can be
// filtered apart from real content.
const sampleNamespace = "sample"

// LoadSampleDocuments returns the sample corpus. When path is non-empty
// the JSON file at path is decoded instead of the built-in set; the file
// may hold a single document object, an array of objects, or an array of
// bare strings.
func LoadSampleDocuments(path string) ([]core.Document, error) {
	if path == "" {
		return builtinSampleDocuments(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocsFile, err)
	}
	docs, err := core.DecodeDocuments(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocsFile, err)
	}
	return docs, nil
}

func builtinSampleDocuments() []core.Document {
	docs := make([]core.Document, len(sampleSentences))
	for i, sentence := range sampleSentences {
		docs[i] = core.Document{
			Content:  sentence,
			Metadata: map[string]any{core.MetadataNamespaceKey: sampleNamespace},
		}
	}
	return docs
}
