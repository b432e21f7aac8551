// Package metrics turns tournament events into prometheus series
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/brawl-tournament/internal/events"
)

const namespace = "brawl"

// Recorder is an event listener that counts what happens in the ring
type Recorder struct {
	attacks       *prometheus.CounterVec
	criticalHits  prometheus.Counter
	damageDealt   prometheus.Counter
	damageAbsorbs prometheus.Counter
	duels         *prometheus.CounterVec
	duelRounds    prometheus.Histogram
	wins          *prometheus.CounterVec
	weaponChoices *prometheus.CounterVec
	healthResets  prometheus.Histogram
	tournaments   prometheus.Counter
}

// NewRecorder registers the tournament series with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		attacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attacks_total",
			Help:      "Attacks resolved, by outcome",
		}, []string{"outcome"}),

		criticalHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "critical_hits_total",
			Help:      "Hits that rolled a critical",
		}),

		damageDealt: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_dealt_total",
			Help:      "Health removed by hits after armor",
		}),

		damageAbsorbs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_absorbed_total",
			Help:      "Damage stopped by armor",
		}),

		duels: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duels_total",
			Help:      "Concluded duels, by how they ended",
		}, []string{"termination"}),

		duelRounds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duel_rounds",
			Help:      "Rounds fought per duel",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),

		wins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wins_total",
			Help:      "Duels won, by fighter",
		}, []string{"fighter"}),

		weaponChoices: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weapon_choices_total",
			Help:      "Weapons picked up at equip time",
		}, []string{"weapon"}),

		healthResets: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "health_reset_hp",
			Help:      "Health a fighter is restored to between bouts",
			Buckets:   prometheus.LinearBuckets(10, 1, 11),
		}),

		tournaments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tournaments_completed_total",
			Help:      "Tournaments run to completion",
		}),
	}
}

// Subscribe attaches the recorder to every tournament event
func (r *Recorder) Subscribe(bus *events.Bus) {
	bus.SubscribeAll(r, events.AllEventTypes...)
}

func (r *Recorder) ID() string    { return "metrics" }
func (r *Recorder) Priority() int { return events.PriorityMetrics }

func (r *Recorder) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.WeaponChosenEvent:
		r.weaponChoices.WithLabelValues(e.Weapon.Key).Inc()

	case *events.AttackResolvedEvent:
		r.attacks.WithLabelValues(string(e.Result.Outcome)).Inc()
		if e.Result.Critical {
			r.criticalHits.Inc()
		}
		r.damageDealt.Add(float64(e.Result.ActualDamage))
		r.damageAbsorbs.Add(float64(e.Result.Absorbed))

	case *events.DuelConcludedEvent:
		r.duels.WithLabelValues(string(e.Duel.Termination)).Inc()
		r.duelRounds.Observe(float64(e.Duel.Rounds))
		r.wins.WithLabelValues(e.Duel.Winner).Inc()

	case *events.HealthRestoredEvent:
		r.healthResets.Observe(float64(e.Health))

	case *events.TournamentCompletedEvent:
		r.tournaments.Inc()
	}

	return nil
}
