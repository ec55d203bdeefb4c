package snapshot_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/davidpeckham/vin/pkg/ent/snapshot"
)

func TestSnapshot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Snapshot Suite")
}

var _ = Describe("Pattern", func() {
	It("counts wildcards", func() {
		Expect(snapshot.Pattern{KeyPattern: "YF5H5"}.Wildcards()).To(Equal(0))
		Expect(snapshot.Pattern{KeyPattern: "YF***"}.Wildcards()).To(Equal(3))
	})

	It("treats open year bounds as the widest span", func() {
		open := snapshot.Pattern{}
		bounded := snapshot.Pattern{YearFrom: 1980, YearTo: 2039}
		Expect(open.YearSpan()).To(BeNumerically(">", bounded.YearSpan()))
	})
})

var _ = Describe("Order", func() {
	It("sorts by specificity, key length, year span, and id", func() {
		ps := []snapshot.Pattern{
			{ID: 1, KeyPattern: "YF***"},
			{ID: 2, KeyPattern: "YF5H5", YearFrom: 2000, YearTo: 2030},
			{ID: 3, KeyPattern: "YF5H5", YearFrom: 2016, YearTo: 2018},
			{ID: 4, KeyPattern: "YF5H59H"},
			{ID: 5, KeyPattern: "YF5H5"},
			{ID: 6, KeyPattern: "YF5H5", YearFrom: 2016, YearTo: 2018},
		}
		snapshot.Order(ps)

		ids := make([]int, len(ps))
		for i, p := range ps {
			ids[i] = p.ID
		}
		// longest literal key first, then narrower year scopes, ties by
		// id, wildcards last
		Expect(ids).To(Equal([]int{4, 3, 6, 2, 5, 1}))
	})
})
