// Package syncer orchestrates the sync flows: token acquisition, sign-in,
// record fetches, journal merge and the transactional replace of the local
// store.
package syncer

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/directdev/portal/internal/api"
	"github.com/directdev/portal/internal/common"
	"github.com/directdev/portal/internal/creds"
	"github.com/directdev/portal/internal/dbx"
	"github.com/directdev/portal/internal/journal"
	"github.com/directdev/portal/internal/logging"
	"github.com/directdev/portal/internal/models"
	gradesrepo "github.com/directdev/portal/internal/repo/grades"
	journalrepo "github.com/directdev/portal/internal/repo/journal"
	"github.com/directdev/portal/internal/repo/prefs"
	termsrepo "github.com/directdev/portal/internal/repo/terms"
)

// Syncer runs sync flows against the academic-records service and the local
// store. All state is scoped to a single Sync invocation; concurrent flows
// share only the stored cookie, which is re-read at the start of each flow.
type Syncer struct {
	api   api.Client
	db    *sql.DB
	creds *creds.Service
	log   logging.Logger
}

func New(apiClient api.Client, db *sql.DB, credentials *creds.Service, log logging.Logger) *Syncer {
	return &Syncer{api: apiClient, db: db, creds: credentials, log: log}
}

// Sync runs the given flow and delivers the outcome to exactly one of the
// two continuations on the calling goroutine: onSuccess after the whole
// chain finished (and, for Common, the store was replaced), onFailure with
// the first error otherwise. Fetches run on worker goroutines; no network
// call is issued for an unrecognized flow.
func (s *Syncer) Sync(ctx context.Context, flow Flow, onSuccess func(), onFailure func(error)) {
	log := s.log.With("run", uuid.NewString())

	if err := s.run(ctx, flow, log); err != nil {
		log.Error(ctx, "sync failed", "error", err)
		if onFailure != nil {
			onFailure(err)
		}
		return
	}

	log.Info(ctx, "sync finished")
	if onSuccess != nil {
		onSuccess()
	}
}

func (s *Syncer) run(ctx context.Context, flow Flow, log logging.Logger) error {
	switch f := flow.(type) {
	case Init:
		return s.runInit(ctx, log)
	case Common:
		return s.runCommon(ctx, log)
	case Resources:
		return s.runResources(ctx, f, log)
	default:
		return common.ErrUnsupportedFlow
	}
}

// signIn authenticates with the given credentials and persists a refreshed
// cookie when the response carries one. The cookie to use for subsequent
// calls is returned and mirrored into cred.
func (s *Syncer) signIn(ctx context.Context, cred *models.Credentials, tokens *models.Tokens) (string, error) {
	res, err := s.api.SignIn(ctx, cred.Username, cred.Password, tokens, cred.Cookie)
	if err != nil {
		return "", err
	}
	if res.Cookie != "" {
		if err := s.creds.SetCookie(ctx, res.Cookie); err != nil {
			return "", err
		}
		cred.Cookie = res.Cookie
	}
	return cred.Cookie, nil
}

func (s *Syncer) runInit(ctx context.Context, log logging.Logger) error {
	cred, err := s.creds.Load(ctx)
	if err != nil {
		return err
	}

	tokens, err := s.api.GetTokens(ctx)
	if err != nil {
		return err
	}

	cookie, err := s.signIn(ctx, cred, tokens)
	if err != nil {
		return err
	}

	log.Debug(ctx, "bootstrapping")
	return s.api.Bootstrap(ctx, cookie)
}

func (s *Syncer) runCommon(ctx context.Context, log logging.Logger) error {
	cred, err := s.creds.Load(ctx)
	if err != nil {
		return err
	}

	tokens, err := s.api.GetTokens(ctx)
	if err != nil {
		return err
	}

	cookie, err := s.signIn(ctx, cred, tokens)
	if err != nil {
		return err
	}

	discovered, err := s.api.GetTerms(ctx, cookie)
	if err != nil {
		return err
	}
	log.Debug(ctx, "terms discovered", "count", len(discovered))

	// Refresh the session before the long fan-out, then re-read the term
	// sequence under the fresh cookie.
	cookie, err = s.signIn(ctx, cred, tokens)
	if err != nil {
		return err
	}

	terms, err := s.api.GetTerms(ctx, cookie)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return common.ErrNoTerms
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return termsrepo.NewSQLiteRepository(tx).Upsert(ctx, terms)
	})
	if err != nil {
		return err
	}

	// The first term in the sequence is the current one.
	term := strconv.Itoa(terms[0].Value)
	log.Debug(ctx, "fetching records", "term", term)

	var (
		finances []*models.Finance
		sessions []*models.Session
		exams    []*models.Exam
		grade    *models.Grade
		profile  *models.Profile
		summary  *models.FinanceSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		finances, err = s.api.GetFinances(gctx, cookie)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.api.GetSessions(gctx, cookie)
		return err
	})
	g.Go(func() error {
		var err error
		exams, err = s.api.GetExams(gctx, models.ExamRequest{Term: term}, cookie)
		return err
	})
	g.Go(func() error {
		var err error
		grade, err = s.api.GetGrades(gctx, term, cookie)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.api.GetProfile(gctx, cookie)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.api.GetFinanceSummary(gctx, cookie)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	entries := journal.Merge(exams, finances, sessions)
	log.Debug(ctx, "journal merged", "entries", len(entries))

	return s.persist(ctx, entries, exams, finances, sessions, grade, profile, summary)
}

// persist replaces the previous record generation inside one transaction:
// leaf records first, then the journal index over them, then the grade
// sub-collections and credit row. The profile and finance-summary scalars
// ride the same transaction handle.
func (s *Syncer) persist(
	ctx context.Context,
	entries []*models.JournalEntry,
	exams []*models.Exam,
	finances []*models.Finance,
	sessions []*models.Session,
	grade *models.Grade,
	profile *models.Profile,
	summary *models.FinanceSummary,
) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		jr := journalrepo.NewSQLiteRepository(tx)
		if err := jr.DeleteAll(ctx); err != nil {
			return err
		}
		if err := jr.InsertRecords(ctx, exams, finances, sessions); err != nil {
			return err
		}
		if err := jr.InsertEntries(ctx, entries); err != nil {
			return err
		}

		if err := gradesrepo.NewSQLiteRepository(tx).Replace(ctx, grade); err != nil {
			return err
		}

		p := prefs.NewSQLiteRepository(tx)
		if err := saveProfile(ctx, p, profile); err != nil {
			return err
		}
		return saveFinanceSummary(ctx, p, summary)
	})
}

func saveProfile(ctx context.Context, p prefs.Repository, profile *models.Profile) error {
	fields := map[string]string{
		prefs.KeyMajor:     profile.Major,
		prefs.KeyDegree:    profile.Degree,
		prefs.KeyBirthday:  profile.Birthday,
		prefs.KeyName:      profile.Name,
		prefs.KeyStudentID: profile.StudentID,
	}
	for key, value := range fields {
		if err := p.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func saveFinanceSummary(ctx context.Context, p prefs.Repository, summary *models.FinanceSummary) error {
	if err := p.Set(ctx, prefs.KeyFinanceCharge, strconv.Itoa(summary.Charge)); err != nil {
		return err
	}
	return p.Set(ctx, prefs.KeyFinancePayment, strconv.Itoa(summary.Payment))
}

func (s *Syncer) runResources(ctx context.Context, f Resources, log logging.Logger) error {
	if len(f.Courses) == 0 {
		return common.ErrNoCourses
	}

	cred, err := s.creds.Load(ctx)
	if err != nil {
		return err
	}

	tokens, err := s.api.GetTokens(ctx)
	if err != nil {
		return err
	}

	cookie, err := s.signIn(ctx, cred, tokens)
	if err != nil {
		return err
	}

	resources, err := s.api.GetResources(ctx, cookie, f.Courses)
	if err != nil {
		return err
	}

	log.Info(ctx, "resources fetched", "count", len(resources))
	return nil
}
