package nlp

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dhruvmish/Airline-Assistant/models"
)

const (
	// DefaultConfidenceThreshold is the minimum posterior probability
	// required before the classifier's verdict is trusted.
	DefaultConfidenceThreshold = 0.3

	maxVocabulary  = 1000
	smoothingAlpha = 0.1
)

// TrainingExample pairs a normalized pattern with its intent tag.
type TrainingExample struct {
	Text  string
	Label string
}

// TrainingData derives one example per (intent, pattern) pair, in
// definition order so fixtures are reproducible.
func TrainingData(intents []models.IntentDefinition, n *Normalizer) []TrainingExample {
	var examples []TrainingExample
	for _, intent := range intents {
		for _, pattern := range intent.Patterns {
			examples = append(examples, TrainingExample{
				Text:  n.Normalize(pattern),
				Label: intent.Tag,
			})
		}
	}
	return examples
}

// trainedModel is the serialized artifact: a TF-IDF vocabulary plus the
// fitted multinomial naive Bayes parameters. Classes are kept in
// lexicographic order so argmax ties always break the same way.
type trainedModel struct {
	Fingerprint    string
	Vocabulary     map[string]int
	IDF            []float64
	Classes        []string
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
}

// Classifier maps normalized text to an intent tag with a posterior
// probability. The trained model is read-only after Train/Load and safe to
// share across concurrent Predict calls.
type Classifier struct {
	threshold float64
	model     *trainedModel
}

func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Classifier{threshold: threshold}
}

// vectorizerTerms produces unigram and bigram terms from normalized text.
// Single-character tokens are not features.
func vectorizerTerms(text string) []string {
	tokens := make([]string, 0, 8)
	for _, tok := range strings.Fields(text) {
		if len(tok) >= 2 {
			tokens = append(tokens, tok)
		}
	}
	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// Train fits TF-IDF weights and naive Bayes parameters on the examples.
// Fitting is fully deterministic: vocabulary selection orders terms by
// corpus frequency then lexicographically, and no randomness is involved.
func (c *Classifier) Train(examples []TrainingExample) {
	if len(examples) == 0 {
		c.model = nil
		return
	}

	docs := make([][]string, len(examples))
	corpusCount := make(map[string]int)
	docFreq := make(map[string]int)
	for i, ex := range examples {
		docs[i] = vectorizerTerms(ex.Text)
		seen := make(map[string]struct{})
		for _, t := range docs[i] {
			corpusCount[t]++
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	// Cap the vocabulary at the most frequent terms across the corpus.
	allTerms := make([]string, 0, len(corpusCount))
	for t := range corpusCount {
		allTerms = append(allTerms, t)
	}
	sort.Slice(allTerms, func(i, j int) bool {
		if corpusCount[allTerms[i]] != corpusCount[allTerms[j]] {
			return corpusCount[allTerms[i]] > corpusCount[allTerms[j]]
		}
		return allTerms[i] < allTerms[j]
	})
	if len(allTerms) > maxVocabulary {
		allTerms = allTerms[:maxVocabulary]
	}
	sort.Strings(allTerms)

	vocab := make(map[string]int, len(allTerms))
	for i, t := range allTerms {
		vocab[t] = i
	}

	nDocs := float64(len(docs))
	idf := make([]float64, len(allTerms))
	for t, i := range vocab {
		idf[i] = math.Log((1+nDocs)/(1+float64(docFreq[t]))) + 1
	}

	classSet := make(map[string]struct{})
	for _, ex := range examples {
		classSet[ex.Label] = struct{}{}
	}
	classes := make([]string, 0, len(classSet))
	for label := range classSet {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	classIdx := make(map[string]int, len(classes))
	for i, label := range classes {
		classIdx[label] = i
	}

	classDocs := make([]float64, len(classes))
	featureSum := make([][]float64, len(classes))
	for i := range featureSum {
		featureSum[i] = make([]float64, len(vocab))
	}
	for i, ex := range examples {
		ci := classIdx[ex.Label]
		classDocs[ci]++
		for col, weight := range tfidfVector(docs[i], vocab, idf) {
			featureSum[ci][col] += weight
		}
	}

	logPrior := make([]float64, len(classes))
	logProb := make([][]float64, len(classes))
	for ci := range classes {
		logPrior[ci] = math.Log(classDocs[ci] / nDocs)
		total := 0.0
		for _, w := range featureSum[ci] {
			total += w
		}
		denom := math.Log(total + smoothingAlpha*float64(len(vocab)))
		logProb[ci] = make([]float64, len(vocab))
		for col, w := range featureSum[ci] {
			logProb[ci][col] = math.Log(w+smoothingAlpha) - denom
		}
	}

	c.model = &trainedModel{
		Fingerprint:    Fingerprint(examples),
		Vocabulary:     vocab,
		IDF:            idf,
		Classes:        classes,
		ClassLogPrior:  logPrior,
		FeatureLogProb: logProb,
	}
}

// tfidfVector returns the l2-normalized sparse TF-IDF weights of one
// document as a column->weight map. Accumulation runs in ascending column
// order: float summation order changes the low bits, and identical inputs
// must produce bit-identical weights.
func tfidfVector(terms []string, vocab map[string]int, idf []float64) map[int]float64 {
	vec := make(map[int]float64)
	for _, t := range terms {
		if col, ok := vocab[t]; ok {
			vec[col]++
		}
	}
	cols := sortedColumns(vec)
	norm := 0.0
	for _, col := range cols {
		vec[col] *= idf[col]
		norm += vec[col] * vec[col]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for _, col := range cols {
			vec[col] /= norm
		}
	}
	return vec
}

func sortedColumns(vec map[int]float64) []int {
	cols := make([]int, 0, len(vec))
	for col := range vec {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}

// Predict scores normalized text against every trained class and returns
// the best tag with its posterior probability. Verdicts below the
// confidence threshold report an empty intent but keep the probability.
// Any internal failure degrades to an empty result, never an error.
func (c *Classifier) Predict(normalized string) models.ClassificationResult {
	m := c.model
	if m == nil || len(m.Classes) == 0 {
		return models.ClassificationResult{}
	}

	vec := tfidfVector(vectorizerTerms(normalized), m.Vocabulary, m.IDF)
	cols := sortedColumns(vec)

	jll := make([]float64, len(m.Classes))
	for ci := range m.Classes {
		score := m.ClassLogPrior[ci]
		for _, col := range cols {
			score += vec[col] * m.FeatureLogProb[ci][col]
		}
		jll[ci] = score
	}

	// Posterior via log-sum-exp; classes are lexicographically ordered and
	// only strictly greater scores win, so ties break deterministically.
	maxJLL := jll[0]
	for _, s := range jll[1:] {
		if s > maxJLL {
			maxJLL = s
		}
	}
	sum := 0.0
	for _, s := range jll {
		sum += math.Exp(s - maxJLL)
	}
	best, bestProb := 0, 0.0
	for ci, s := range jll {
		p := math.Exp(s-maxJLL) / sum
		if p > bestProb {
			best, bestProb = ci, p
		}
	}
	if math.IsNaN(bestProb) || math.IsInf(bestProb, 0) {
		return models.ClassificationResult{}
	}

	result := models.ClassificationResult{Confidence: bestProb}
	if bestProb >= c.threshold {
		result.Intent = m.Classes[best]
	}
	return result
}

// Fingerprint hashes the ordered training pairs; it is stored inside the
// artifact so a changed intent configuration invalidates the cached model.
func Fingerprint(examples []TrainingExample) string {
	h := sha256.New()
	for _, ex := range examples {
		h.Write([]byte(ex.Label))
		h.Write([]byte{0})
		h.Write([]byte(ex.Text))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Save serializes the trained model to path.
func (c *Classifier) Save(path string) error {
	if c.model == nil {
		return fmt.Errorf("save model: no trained model")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(c.model); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// Load deserializes a previously saved model from path.
func (c *Classifier) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	defer f.Close()
	var m trainedModel
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return fmt.Errorf("decode model: %w", err)
	}
	c.model = &m
	return nil
}

// LoadOrTrain reuses the artifact at path when it exists and still matches
// the current training data; otherwise it trains and saves a fresh model.
// Artifact failures propagate: the caller cannot run without a trained or
// trainable model.
func (c *Classifier) LoadOrTrain(path string, examples []TrainingExample) error {
	if _, err := os.Stat(path); err == nil {
		if err := c.Load(path); err != nil {
			return err
		}
		if c.model.Fingerprint == Fingerprint(examples) {
			log.Printf("Loaded intent model from %s", path)
			return nil
		}
		log.Printf("Intent definitions changed since %s was saved, retraining", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat model artifact: %w", err)
	}

	log.Println("Training intent model...")
	c.Train(examples)
	if err := c.Save(path); err != nil {
		return err
	}
	log.Printf("Intent model trained and saved to %s", path)
	return nil
}
