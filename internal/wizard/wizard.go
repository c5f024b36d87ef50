// Package wizard owns the questionnaire session: step navigation with a
// history stack, profile and reading commits, diet plan selection, and
// checkpoint based resume.
//
// A Wizard is not safe for concurrent use. Callers that share one across
// goroutines serialize access themselves and hand the wizard a
// LockedScheduler so deferred transitions take the same lock.
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mcp-diet-plan/internal/catalog"
	"mcp-diet-plan/internal/classifier"
	"mcp-diet-plan/internal/models"
	"mcp-diet-plan/internal/selection"
)

// DefaultPlanDelay is the pause between a reading commit and the diet plan.
const DefaultPlanDelay = 1500 * time.Millisecond

// Store persists the single resume checkpoint.
type Store interface {
	SaveCheckpoint(ctx context.Context, cp models.Checkpoint) error
	// LoadCheckpoint returns nil without error when nothing is saved.
	LoadCheckpoint(ctx context.Context) (*models.Checkpoint, error)
	ClearCheckpoint(ctx context.Context) error
}

// Observer is told about every step change and over-target flip.
type Observer interface {
	StepChanged(from, to models.Step, warning string)
	OverTargetChanged(ev models.OverTargetChanged)
}

type Options struct {
	Catalog   *catalog.Catalog
	Store     Store
	Scheduler Scheduler
	Observer  Observer
	// PlanDelay of zero or less advances to the diet plan immediately.
	PlanDelay time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

type pendingTransition struct {
	seq  uint64
	stop func() bool
}

type Wizard struct {
	catalog *catalog.Catalog
	store   Store
	sched   Scheduler
	obs     Observer
	delay   time.Duration
	logger  *zap.Logger
	now     func() time.Time

	current models.Step
	history []models.Step

	sessionID string
	profile   *models.Profile
	status    models.StatusTier
	planKey   catalog.Key
	agg       *selection.Aggregator
	warning   string

	pending *pendingTransition
	seq     uint64
}

func New(opts Options) *Wizard {
	w := &Wizard{
		catalog: opts.Catalog,
		store:   opts.Store,
		sched:   opts.Scheduler,
		obs:     opts.Observer,
		delay:   opts.PlanDelay,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if w.catalog == nil {
		w.catalog = catalog.Default()
	}
	if w.sched == nil {
		w.sched = TimerScheduler{}
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	if w.now == nil {
		w.now = time.Now
	}
	w.current = models.StepLanding
	w.resetSession()
	return w
}

func (w *Wizard) resetSession() {
	w.history = nil
	w.sessionID = uuid.NewString()
	w.profile = nil
	w.status = models.StatusNormal
	w.planKey = catalog.Key{}
	w.agg = nil
	w.warning = ""
}

func (w *Wizard) Current() models.Step { return w.current }

// History returns the visited steps, most recent last.
func (w *Wizard) History() []models.Step {
	out := make([]models.Step, len(w.history))
	copy(out, w.history)
	return out
}

// Catalog returns the catalog the wizard plans from.
func (w *Wizard) Catalog() *catalog.Catalog { return w.catalog }

// PendingTransition reports whether a deferred diet plan transition is armed.
func (w *Wizard) PendingTransition() bool { return w.pending != nil }

// Session returns a copy of the current session.
func (w *Wizard) Session() models.Session {
	s := models.Session{
		ID:        w.sessionID,
		Status:    w.status.OrDefault(),
		Selection: []models.SelectedItem{},
		Warning:   w.warning,
	}
	if w.profile != nil {
		p := *w.profile
		s.Profile = &p
	}
	if w.agg != nil {
		s.Selection = w.agg.Items()
		s.Totals = w.agg.Totals()
		s.TargetKcal = w.agg.TargetKcal()
		s.OverTarget = w.agg.OverTarget()
	}
	return s
}

// Advance moves to next and records the current step in history. Advancing
// to the current step does nothing.
func (w *Wizard) Advance(next models.Step) error {
	if !next.Valid() {
		return models.NewValidationError("step", fmt.Sprintf("unknown step %q", next))
	}
	if next == w.current {
		return nil
	}
	w.navigate(next, true)
	return nil
}

// Back returns to the most recently left step. It fails with
// models.ErrNoHistory and stays put when there is nothing to return to.
func (w *Wizard) Back() error {
	if len(w.history) == 0 {
		return models.ErrNoHistory
	}
	prev := w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.navigate(prev, false)
	return nil
}

// navigate is the single place a step change happens. Any navigation
// abandons a pending deferred transition.
func (w *Wizard) navigate(to models.Step, push bool) {
	w.cancelPending()
	from := w.current
	if push {
		w.history = append(w.history, from)
	}
	w.current = to

	w.logger.Debug("Step changed",
		zap.String("session_id", w.sessionID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("history", len(w.history)))
	if w.obs != nil {
		w.obs.StepChanged(from, to, w.warning)
	}
}

// SubmitProfile parses raw form input and commits it.
func (w *Wizard) SubmitProfile(form models.ProfileForm) error {
	p, err := ParseProfile(form)
	if err != nil {
		return err
	}
	return w.CommitProfile(p)
}

// CommitProfile stores a validated profile and moves on to the reading step.
// Changing the condition type discards a plan built for the old one.
func (w *Wizard) CommitProfile(p models.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if w.agg != nil && w.planKey.Condition != p.ConditionType {
		w.dropPlan()
	}
	w.profile = &p
	w.logger.Info("Profile committed",
		zap.String("session_id", w.sessionID),
		zap.String("condition", string(p.ConditionType)))
	return w.Advance(models.StepReading)
}

// SubmitReading parses raw form input and commits it.
func (w *Wizard) SubmitReading(ctx context.Context, form models.ReadingForm) error {
	r, err := classifier.ParseReading(form)
	if err != nil {
		return err
	}
	return w.CommitReading(ctx, r)
}

// CommitReading classifies the reading, builds the diet plan for the
// resulting tier, checkpoints the session and arms the transition to the
// diet plan step. Nothing changes when validation or catalog lookup fails.
func (w *Wizard) CommitReading(ctx context.Context, r models.Reading) error {
	if w.profile == nil {
		return models.NewValidationError("profile", "profile must be submitted first")
	}
	status, err := classifier.Classify(r.PreMeal, r.PostMeal)
	if err != nil {
		return err
	}

	key := catalog.Key{Condition: w.profile.ConditionType, Status: status}
	target, err := w.catalog.Target(key.Condition, key.Status)
	if err != nil {
		return fmt.Errorf("failed to generate diet plan: %w", err)
	}
	if _, err := w.catalog.Plan(key.Condition, key.Status); err != nil {
		return fmt.Errorf("failed to generate diet plan: %w", err)
	}

	w.status = status
	if w.agg == nil || w.planKey != key {
		w.dropPlan()
		w.agg = selection.New(target.TargetKcal, w.onOverTarget)
		w.planKey = key
	}
	w.logger.Info("Reading classified",
		zap.String("session_id", w.sessionID),
		zap.Float64("pre_meal", r.PreMeal),
		zap.Float64("post_meal", r.PostMeal),
		zap.String("status", string(status)))

	w.saveCheckpoint(ctx, models.StepDietPlan)
	w.schedulePlan()
	return nil
}

func (w *Wizard) dropPlan() {
	w.agg = nil
	w.planKey = catalog.Key{}
	w.warning = ""
}

func (w *Wizard) schedulePlan() {
	if w.delay <= 0 {
		w.showPlan()
		return
	}
	w.cancelPending()
	w.seq++
	seq := w.seq
	stop := w.sched.AfterFunc(w.delay, func() { w.firePending(seq) })
	w.pending = &pendingTransition{seq: seq, stop: stop}
}

// firePending runs the deferred transition unless it was abandoned. A stale
// sequence number means the user navigated away after the timer fired but
// before the callback ran.
func (w *Wizard) firePending(seq uint64) {
	if w.pending == nil || w.pending.seq != seq {
		w.logger.Debug("Discarded stale plan transition", zap.Uint64("seq", seq))
		return
	}
	w.pending = nil
	w.showPlan()
}

// showPlan moves to the diet plan step unless it is already showing, so a
// re-submitted reading never stacks the plan on top of itself.
func (w *Wizard) showPlan() {
	if w.current == models.StepDietPlan {
		return
	}
	w.navigate(models.StepDietPlan, true)
}

func (w *Wizard) cancelPending() {
	if w.pending == nil {
		return
	}
	w.pending.stop()
	w.pending = nil
}

// Toggle flips the item with label in one meal slot and adherence class.
func (w *Wizard) Toggle(label string, slot models.MealSlot, class models.AdherenceClass) (selection.Result, error) {
	if w.agg == nil {
		return selection.Result{}, models.ErrNoPlan
	}
	item, err := w.catalog.Find(w.planKey.Condition, w.planKey.Status, slot, class, label)
	if err != nil {
		return selection.Result{}, err
	}
	res := w.agg.Toggle(item, slot, class)
	w.logger.Debug("Item toggled",
		zap.String("session_id", w.sessionID),
		zap.String("item", label),
		zap.String("slot", string(slot)),
		zap.String("class", string(class)),
		zap.Bool("selected", res.Selected),
		zap.Int("kcal", res.Totals.Kcal))
	return res, nil
}

func (w *Wizard) onOverTarget(ev models.OverTargetChanged) {
	if ev.OverTarget {
		w.warning = models.OverTargetWarning
	} else {
		w.warning = ""
	}
	w.logger.Info("Calorie target crossed",
		zap.String("session_id", w.sessionID),
		zap.Bool("over_target", ev.OverTarget),
		zap.Int("kcal", ev.Totals.Kcal),
		zap.Int("target_kcal", ev.TargetKcal))
	if w.obs != nil {
		w.obs.OverTargetChanged(ev)
	}
}

// ConfirmPlan checkpoints the selection and moves on to lifestyle tips.
func (w *Wizard) ConfirmPlan(ctx context.Context) error {
	if w.agg == nil {
		return models.ErrNoPlan
	}
	w.saveCheckpoint(ctx, models.StepLifestyle)
	return w.Advance(models.StepLifestyle)
}

// Finish checkpoints the session and shows the summary.
func (w *Wizard) Finish(ctx context.Context) error {
	if w.agg == nil {
		return models.ErrNoPlan
	}
	w.saveCheckpoint(ctx, models.StepSummary)
	return w.Advance(models.StepSummary)
}

// saveCheckpoint persists the whole session as one record. A failed write is
// logged and does not block the user.
func (w *Wizard) saveCheckpoint(ctx context.Context, resume models.Step) {
	if w.store == nil {
		return
	}
	cp := w.checkpoint(resume)
	if err := w.store.SaveCheckpoint(ctx, cp); err != nil {
		w.logger.Warn("Failed to save checkpoint",
			zap.String("session_id", w.sessionID),
			zap.String("resume_step", string(resume)),
			zap.Error(err))
		return
	}
	w.logger.Debug("Checkpoint saved",
		zap.String("session_id", w.sessionID),
		zap.String("resume_step", string(resume)))
}

func (w *Wizard) checkpoint(resume models.Step) models.Checkpoint {
	s := w.Session()
	cp := models.Checkpoint{
		SessionID:             s.ID,
		Status:                s.Status,
		Selection:             s.Selection,
		Totals:                s.Totals,
		ResumeStep:            resume,
		PendingWarningMessage: s.Warning,
		SavedAt:               w.now().UTC(),
	}
	if s.Profile != nil {
		cp.Profile = *s.Profile
	}
	return cp
}

// Resume rehydrates the session from cp and jumps straight to target. An
// empty target uses the checkpoint's own resume step.
func (w *Wizard) Resume(cp models.Checkpoint, target models.Step) error {
	if target == "" {
		target = cp.ResumeStep
	}
	if !target.Resumable() {
		return models.NewValidationError("resumeStep", fmt.Sprintf("cannot resume at %q", target))
	}
	if err := cp.Profile.Validate(); err != nil {
		return err
	}
	status := cp.Status.OrDefault()
	if !status.Valid() {
		return models.NewValidationError("status", fmt.Sprintf("unknown status %q", cp.Status))
	}

	key := catalog.Key{Condition: cp.Profile.ConditionType, Status: status}
	calTarget, err := w.catalog.Target(key.Condition, key.Status)
	if err != nil {
		return fmt.Errorf("failed to resume diet plan: %w", err)
	}
	for _, it := range cp.Selection {
		item, err := w.catalog.Find(key.Condition, key.Status, it.MealSlot, it.AdherenceClass, it.Label)
		if err != nil {
			return fmt.Errorf("checkpoint selection %q: %w", it.Label, err)
		}
		if item != it.Item() {
			return models.NewValidationError("selection", fmt.Sprintf("%q does not match the catalog", it.Label))
		}
	}

	w.cancelPending()
	if cp.SessionID != "" {
		w.sessionID = cp.SessionID
	}
	p := cp.Profile
	w.profile = &p
	w.status = status
	w.planKey = key
	w.agg = selection.New(calTarget.TargetKcal, w.onOverTarget)
	w.agg.Restore(cp.Selection)
	w.warning = ""
	if w.agg.OverTarget() {
		w.warning = cp.PendingWarningMessage
		if w.warning == "" {
			w.warning = models.OverTargetWarning
		}
	}

	w.logger.Info("Session resumed",
		zap.String("session_id", w.sessionID),
		zap.String("target", string(target)),
		zap.Int("items", w.agg.Len()))
	if target != w.current {
		w.navigate(target, true)
	}
	return nil
}

// ResumeFromStore loads the saved checkpoint, resumes from it and clears
// it so a later unrelated visit does not replay it.
func (w *Wizard) ResumeFromStore(ctx context.Context, target models.Step) error {
	if w.store == nil {
		return models.ErrNoCheckpoint
	}
	cp, err := w.store.LoadCheckpoint(ctx)
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if cp == nil {
		return models.ErrNoCheckpoint
	}
	if err := w.Resume(*cp, target); err != nil {
		return err
	}
	if err := w.store.ClearCheckpoint(ctx); err != nil {
		w.logger.Warn("Failed to clear checkpoint", zap.Error(err))
	}
	return nil
}

// Reset abandons the session and returns to the landing step with a fresh,
// empty session. The sticky warning and any checkpoint are cleared.
func (w *Wizard) Reset(ctx context.Context) error {
	old := w.sessionID
	w.resetSession()
	w.logger.Info("Session reset", zap.String("session_id", old))
	w.navigate(models.StepLanding, false)
	if w.store != nil {
		if err := w.store.ClearCheckpoint(ctx); err != nil {
			return fmt.Errorf("failed to clear checkpoint: %w", err)
		}
	}
	return nil
}
