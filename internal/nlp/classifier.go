package nlp

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"elimuhub-agent/internal/models"
)

// classifierArtifact is the persisted form of a fitted classifier: the
// vocabulary, IDF weights and multinomial naive-Bayes parameters.
type classifierArtifact struct {
	Vectorizer     *Vectorizer
	Classes        []models.Intent
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
}

// IntentClassifier maps free text to one of the fixed intents with a
// posterior-probability confidence. The fitted model is cached in memory and
// mirrored to a gob artifact at a fixed path; a missing or corrupt artifact
// triggers retraining on the built-in seed corpus rather than an error.
type IntentClassifier struct {
	mu          sync.Mutex
	path        string
	maxFeatures int
	logger      *zap.Logger
	model       *classifierArtifact
}

func NewIntentClassifier(artifactPath string, maxFeatures int, logger *zap.Logger) *IntentClassifier {
	return &IntentClassifier{
		path:        artifactPath,
		maxFeatures: maxFeatures,
		logger:      logger,
	}
}

// Train fits the TF-IDF vectorizer and naive-Bayes parameters on the given
// examples and persists the artifact. An empty example set falls back to the
// built-in seed corpus.
func (c *IntentClassifier) Train(examples []TrainingExample) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trainLocked(examples)
}

func (c *IntentClassifier) trainLocked(examples []TrainingExample) error {
	if len(examples) == 0 {
		c.logger.Info("No training data supplied, using built-in seed corpus")
		examples = SeedCorpus()
	}

	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	vec := NewVectorizer(c.maxFeatures)
	vec.Fit(texts)

	// Only intents that actually occur in the corpus become classes.
	classIndex := make(map[models.Intent]int)
	var classes []models.Intent
	for _, intent := range models.Intents() {
		for _, ex := range examples {
			if ex.Intent == intent {
				classIndex[intent] = len(classes)
				classes = append(classes, intent)
				break
			}
		}
	}
	if len(classes) == 0 {
		return fmt.Errorf("training corpus contains no known intents")
	}

	nFeatures := vec.Dimensions()
	classCounts := make([]float64, len(classes))
	featureCounts := make([][]float64, len(classes))
	for i := range featureCounts {
		featureCounts[i] = make([]float64, nFeatures)
	}
	for _, ex := range examples {
		ci, ok := classIndex[ex.Intent]
		if !ok {
			continue
		}
		classCounts[ci]++
		floats.Add(featureCounts[ci], vec.Transform(ex.Text))
	}

	model := &classifierArtifact{
		Vectorizer:     vec,
		Classes:        classes,
		ClassLogPrior:  make([]float64, len(classes)),
		FeatureLogProb: make([][]float64, len(classes)),
	}
	total := floats.Sum(classCounts)
	const alpha = 1.0 // Laplace smoothing
	for ci := range classes {
		model.ClassLogPrior[ci] = math.Log(classCounts[ci] / total)
		model.FeatureLogProb[ci] = make([]float64, nFeatures)
		sum := floats.Sum(featureCounts[ci])
		for j := 0; j < nFeatures; j++ {
			model.FeatureLogProb[ci][j] = math.Log((featureCounts[ci][j] + alpha) / (sum + alpha*float64(nFeatures)))
		}
	}
	c.model = model

	if err := c.saveLocked(); err != nil {
		// The in-memory model is usable even if the artifact cannot be
		// written; persistence failures only cost a retrain on restart.
		c.logger.Warn("Failed to persist classifier artifact", zap.Error(err))
	}
	c.logger.Info("Intent classifier trained",
		zap.Int("examples", len(examples)),
		zap.Int("classes", len(classes)),
		zap.Int("features", nFeatures),
	)
	return nil
}

// Classify returns the most probable intent for the text and the posterior
// probability of that intent. It is total: empty or out-of-vocabulary input
// yields whatever label the trained prior favors.
func (c *IntentClassifier) Classify(text string) models.ClassificationResult {
	model, err := c.ensureModel()
	if err != nil {
		// Training only fails on a degenerate corpus; report the lowest
		// possible confidence so the escalation policy can take over.
		c.logger.Error("Classifier unavailable", zap.Error(err))
		return models.ClassificationResult{Intent: models.IntentGeneralQuestion, Confidence: 0}
	}

	x := model.Vectorizer.Transform(text)
	jll := make([]float64, len(model.Classes))
	for ci := range model.Classes {
		jll[ci] = model.ClassLogPrior[ci] + floats.Dot(x, model.FeatureLogProb[ci])
	}
	logNorm := floats.LogSumExp(jll)

	best := 0
	for ci := range jll {
		if jll[ci] > jll[best] {
			best = ci
		}
	}
	return models.ClassificationResult{
		Intent:     model.Classes[best],
		Confidence: math.Exp(jll[best] - logNorm),
	}
}

// EnsureReady loads the persisted artifact, training a fresh model if none
// exists or the artifact is unreadable. Called once at startup; Classify also
// calls it lazily so a cold process can still serve its first request.
func (c *IntentClassifier) EnsureReady() error {
	_, err := c.ensureModel()
	return err
}

func (c *IntentClassifier) ensureModel() (*classifierArtifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model != nil {
		return c.model, nil
	}
	if err := c.loadLocked(); err != nil {
		c.logger.Info("Classifier artifact not usable, training", zap.String("path", c.path), zap.Error(err))
		if err := c.trainLocked(nil); err != nil {
			return nil, err
		}
	}
	return c.model, nil
}

func (c *IntentClassifier) loadLocked() error {
	f, err := os.Open(c.path)
	if err != nil {
		return err
	}
	defer f.Close()

	var artifact classifierArtifact
	if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
		return fmt.Errorf("failed to decode classifier artifact: %w", err)
	}
	if artifact.Vectorizer == nil || len(artifact.Classes) == 0 {
		return fmt.Errorf("classifier artifact is incomplete")
	}
	c.model = &artifact
	c.logger.Info("Intent classifier loaded", zap.String("path", c.path))
	return nil
}

func (c *IntentClassifier) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(c.model); err != nil {
		return fmt.Errorf("failed to encode classifier artifact: %w", err)
	}
	return nil
}
