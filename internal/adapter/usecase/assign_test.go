package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alba-sim/internal/config/configs"
	"alba-sim/internal/core/domain"
)

func assignFixture(n int, optIn bool) ([]domain.CohortRecord, []domain.User) {
	audience := make([]domain.CohortRecord, 0, n)
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("user_%04d", i)
		audience = append(audience, domain.CohortRecord{UserID: id, ViewCount: 5, AvgDwell: 100})
		users = append(users, domain.User{ID: id, PushOptIn: optIn})
	}
	return audience, users
}

// flatCampaign is a single-arm campaign without causal matching or
// follow-ups, used to isolate one draw per audience member.
func flatCampaign(prob float64) configs.Campaign {
	return configs.Campaign{
		ArmWeights: map[string]float64{"treatment": 1.0},
		ArmProbs:   map[string]float64{"treatment": prob},
	}
}

// TestAssignFlatConversionRate draws 10k single-arm assignments and checks
// the realized application rate against the configured probability.
func TestAssignFlatConversionRate(t *testing.T) {
	p := testPipeline(t, testSim(), testSegment(), flatCampaign(0.055), nil)
	audience, users := assignFixture(10000, true)

	got := p.assignArms(rand.New(rand.NewSource(21)), audience, users, nil, nil, day(30))
	require.Len(t, got, 10000)

	applied := 0
	for _, a := range got {
		require.Equal(t, domain.Arm("treatment"), a.Arm)
		require.Equal(t, 0, a.Week)
		require.Equal(t, day(30), a.SentAt)
		if a.Applied {
			applied++
		}
	}
	// 4 sigma tolerance at n=10000, p=0.055.
	assert.InDelta(t, 0.055, float64(applied)/10000, 0.009)
}

// TestAssignArmShares checks the weighted split across arms.
func TestAssignArmShares(t *testing.T) {
	camp := testCampaign()
	camp.FollowUpWeeks = nil
	camp.CausalArm = ""
	camp.ArmProbs = map[string]float64{"control": 0.02, "variant_a": 0.05, "variant_b": 0.05}
	p := testPipeline(t, testSim(), testSegment(), camp, nil)
	audience, users := assignFixture(10000, true)

	got := p.assignArms(rand.New(rand.NewSource(23)), audience, users, nil, nil, day(30))
	require.Len(t, got, 10000)

	shares := make(map[domain.Arm]float64)
	for _, a := range got {
		shares[a.Arm] += 1.0 / 10000
	}
	assert.InDelta(t, 0.2, shares["control"], 0.02)
	assert.InDelta(t, 0.4, shares["variant_a"], 0.02)
	assert.InDelta(t, 0.4, shares["variant_b"], 0.02)
}

// TestAssignPushOptInFilter ensures opted-out users are skipped when the
// campaign requires push consent, and included when it does not.
func TestAssignPushOptInFilter(t *testing.T) {
	camp := flatCampaign(0.5)
	camp.RequirePushOptIn = true
	p := testPipeline(t, testSim(), testSegment(), camp, nil)
	audience, users := assignFixture(50, false)

	got := p.assignArms(rand.New(rand.NewSource(29)), audience, users, nil, nil, day(30))
	assert.Empty(t, got)

	camp.RequirePushOptIn = false
	p = testPipeline(t, testSim(), testSegment(), camp, nil)
	got = p.assignArms(rand.New(rand.NewSource(29)), audience, users, nil, nil, day(30))
	assert.Len(t, got, 50)
}

// TestAssignCausalRates routes everyone through the causal arm and checks
// the matched and unmatched probabilities separately.
func TestAssignCausalRates(t *testing.T) {
	camp := configs.Campaign{
		ArmWeights:    map[string]float64{"variant_b": 1.0},
		CausalArm:     "variant_b",
		MatchedProb:   0.15,
		UnmatchedProb: 0.03,
	}
	p := testPipeline(t, testSim(), testSegment(), camp, nil)
	catMap := domain.DefaultCategoryMap()

	postings := []domain.Posting{
		{ID: "post_0000", Category: "cafe", HourlyWage: 15000, CreatedAt: day(0)},
	}

	// A cafe worker last settled below the posting's wage matches; an IT
	// worker has no similar posting and does not.
	audience, users := assignFixture(10000, true)
	for i := range users {
		if i%2 == 0 {
			users[i].LastCategory = "cafe"
			users[i].LastWage = 10000
		} else {
			users[i].LastCategory = "it"
			users[i].LastWage = 10000
		}
		users[i].SettlementCount = 1
	}

	got := p.assignArms(rand.New(rand.NewSource(31)), audience, users, postings, catMap, day(30))
	require.Len(t, got, 10000)

	matched := make(map[string]bool, len(users))
	for _, u := range users {
		matched[u.ID] = u.LastCategory == "cafe"
	}
	var mApplied, mTotal, uApplied, uTotal float64
	for _, a := range got {
		if matched[a.UserID] {
			mTotal++
			if a.Applied {
				mApplied++
			}
		} else {
			uTotal++
			if a.Applied {
				uApplied++
			}
		}
	}
	require.Equal(t, float64(5000), mTotal)
	assert.InDelta(t, 0.15, mApplied/mTotal, 0.021)
	assert.InDelta(t, 0.03, uApplied/uTotal, 0.01)
}

// TestAssignFollowUps checks that each audience member gets the initial
// send plus one row per follow-up week, with send dates inside the right
// weekly bucket.
func TestAssignFollowUps(t *testing.T) {
	camp := flatCampaign(1.0)
	camp.FollowUpWeeks = []int{1, 2, 4}
	camp.FollowUpProbs = map[string]float64{"treatment": 0.1}
	p := testPipeline(t, testSim(), testSegment(), camp, nil)
	audience, users := assignFixture(20, true)

	sendAt := day(30)
	got := p.assignArms(rand.New(rand.NewSource(37)), audience, users, nil, nil, sendAt)
	require.Len(t, got, 20*4)

	byUser := make(map[string][]domain.Assignment)
	for _, a := range got {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}
	for id, as := range byUser {
		require.Len(t, as, 4, "user %s", id)
		require.Equal(t, []int{0, 1, 2, 4}, []int{as[0].Week, as[1].Week, as[2].Week, as[3].Week})
		assert.Equal(t, sendAt, as[0].SentAt)
		for _, a := range as[1:] {
			lo := sendAt.AddDate(0, 0, 7*a.Week-6)
			hi := sendAt.AddDate(0, 0, 7*a.Week)
			assert.False(t, a.SentAt.Before(lo), "user %s week %d sent too early", id, a.Week)
			assert.False(t, a.SentAt.After(hi), "user %s week %d sent too late", id, a.Week)
		}
	}
}

// TestAssignCausalBoostCaps pins the boost path: with a certain initial
// conversion on the causal arm and a follow-up probability that the boost
// pushes to 1, every follow-up converts.
func TestAssignCausalBoostCaps(t *testing.T) {
	camp := configs.Campaign{
		ArmWeights:    map[string]float64{"variant_b": 1.0},
		CausalArm:     "variant_b",
		MatchedProb:   1.0,
		UnmatchedProb: 1.0,
		FollowUpWeeks: []int{1},
		FollowUpProbs: map[string]float64{"variant_b": 0.8},
		Boost:         1.5,
	}
	p := testPipeline(t, testSim(), testSegment(), camp, nil)
	audience, users := assignFixture(50, true)

	got := p.assignArms(rand.New(rand.NewSource(41)), audience, users, nil, nil, day(30))
	require.Len(t, got, 100)
	for _, a := range got {
		assert.True(t, a.Applied, "user %s week %d", a.UserID, a.Week)
	}
}

func TestAssignUniqueIDs(t *testing.T) {
	p := testPipeline(t, testSim(), testSegment(), testCampaign(), nil)
	audience, users := assignFixture(100, true)

	got := p.assignArms(rand.New(rand.NewSource(43)), audience, users, nil, nil, day(30))
	seen := make(map[string]bool, len(got))
	for _, a := range got {
		require.False(t, seen[a.ID], "duplicate assignment id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestMatchesBetterPosting(t *testing.T) {
	catMap := domain.DefaultCategoryMap()
	postings := []domain.Posting{
		{ID: "post_0000", Category: "serving", HourlyWage: 12000},
		{ID: "post_0001", Category: "it", HourlyWage: 20000},
	}

	cases := []struct {
		name string
		user domain.User
		want bool
	}{
		{
			name: "no settlement history",
			user: domain.User{},
			want: false,
		},
		{
			name: "same category higher wage",
			user: domain.User{LastCategory: "serving", LastWage: 10000},
			want: true,
		},
		{
			name: "similar category higher wage",
			user: domain.User{LastCategory: "cafe", LastWage: 10000},
			want: true,
		},
		{
			name: "higher wage but unrelated category",
			user: domain.User{LastCategory: "office_assist", LastWage: 10000},
			want: false,
		},
		{
			name: "similar category but equal wage",
			user: domain.User{LastCategory: "cafe", LastWage: 12000},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matchesBetterPosting(tc.user, postings, catMap))
		})
	}
}
