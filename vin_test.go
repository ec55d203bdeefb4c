package vin_test

import (
	"errors"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/davidpeckham/vin"
)

func TestVin(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "VIN Suite")
}

var _ = Describe("New", func() {
	It("accepts a valid VIN", func() {
		v, err := vin.New("4T1BE46K19U856421")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("4T1BE46K19U856421"))
	})

	It("uppercases lowercase input", func() {
		v, err := vin.New("4t1be46k19u856421")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("4T1BE46K19U856421"))
	})

	It("rejects short and long input", func() {
		for _, s := range []string{"", "4T1B", "JM3KE4BY6G06", "4T1BE46K19U8564211"} {
			_, err := vin.New(s)
			var lenErr *vin.InvalidLengthError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &lenErr)).To(BeTrue())
			Expect(lenErr.Length).To(Equal(len(s)))
		}
	})

	It("rejects the letters I, O, and Q", func() {
		for _, s := range []string{
			"IT1BE46K19U856421",
			"4O1BE46K19U856421",
			"4TQBE46K19U856421",
		} {
			_, err := vin.New(s, vin.OptCorrectCheckDigit(true))
			var charErr *vin.InvalidCharacterError
			Expect(errors.As(err, &charErr)).To(BeTrue())
		}
	})

	It("reports the position of an invalid character", func() {
		_, err := vin.New("4T1BE46K19U85642!")
		var charErr *vin.InvalidCharacterError
		Expect(errors.As(err, &charErr)).To(BeTrue())
		Expect(charErr.Position).To(Equal(17))
		Expect(charErr.Char).To(Equal('!'))
	})

	It("rejects a wrong check digit", func() {
		for _, s := range []string{
			"5FNYF5H50HB011946",
			"3FAHP0JA8AR281181",
			"4T1BE46K29U856421",
			"JM3KE4BY1G0636881",
		} {
			_, err := vin.New(s)
			var cdErr *vin.CheckDigitError
			Expect(errors.As(err, &cdErr)).To(BeTrue())
		}
	})

	It("corrects a wrong check digit on request", func() {
		_, err := vin.New("4T1BE46K09U856421")
		var cdErr *vin.CheckDigitError
		Expect(errors.As(err, &cdErr)).To(BeTrue())
		Expect(cdErr.Expected).To(Equal(byte('1')))
		Expect(cdErr.Got).To(Equal(byte('0')))

		v, err := vin.New("4T1BE46K09U856421", vin.OptCorrectCheckDigit(true))
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("4T1BE46K19U856421"))
	})

	It("changes at most the check position when correcting", func() {
		for _, s := range []string{
			"5FNYF5H59HB011946",
			"KNDCE3LG2L5073161",
			"YT9NN1U14KA007175",
		} {
			v, err := vin.New(s, vin.OptCorrectCheckDigit(true))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.String()[:8]).To(Equal(s[:8]))
			Expect(v.String()[9:]).To(Equal(s[9:]))
		}
	})
})

var _ = Describe("VIN views", func() {
	It("splits WMI, VDS, and VIS", func() {
		v, err := vin.New("5FNYF5H59HB011946")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Wmi()).To(Equal("5FN"))
		Expect(v.Vds()).To(Equal("YF5H5"))
		Expect(v.Vis()).To(Equal("HB011946"))
		Expect(v.CheckDigit()).To(Equal(byte('9')))
	})

	It("extends the WMI for specialized manufacturers", func() {
		v, err := vin.New("YT9NN1U14KA007175")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Wmi()).To(Equal("YT9007"))
	})

	It("builds descriptors", func() {
		v, err := vin.New("5FNYF5H59HB011946")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Descriptor()).To(Equal("5FNYF5H5*HB"))

		v, err = vin.New("YT9NN1U14KA007175")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Descriptor()).To(Equal("YT9NN1U1*KA007"))
	})
})

var _ = Describe("Model year", func() {
	// year codes repeat every 30 years; an alphabetic position 7
	// selects the 2010-2039 cycle
	DescribeTable("resolves the year code",
		func(yearChar, cycleChar byte, want int) {
			s := "111111" + string(cycleChar) + "11" + string(yearChar) + "1111111"
			v, err := vin.New(s, vin.OptCorrectCheckDigit(true))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.ModelYear()).To(Equal(want))
		},
		Entry("A in the new cycle", byte('A'), byte('A'), 2010),
		Entry("A in the old cycle", byte('A'), byte('1'), 1980),
		Entry("H in the new cycle", byte('H'), byte('A'), 2017),
		Entry("digit code in the old cycle", byte('9'), byte('1'), 2009),
		Entry("future code clamps to the snapshot", byte('T'), byte('A'), 1996),
		Entry("clamped digit code", byte('5'), byte('A'), 2005),
	)

	It("returns the unknown sentinel for a zero year character", func() {
		v, err := vin.New("5FNYF5H530B011946")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.ModelYear()).To(Equal(vin.YearUnknown))
	})
})

var _ = Describe("Decode", func() {
	type vehicleCase struct {
		vin          string
		manufacturer string
		make         string
		model        string
		year         int
	}

	cases := []vehicleCase{
		{"5FNYF5H59HB011946", "Honda", "Honda", "Pilot", 2017},
		{"3FAHP0JA0AR281181", "Ford", "Ford", "Fusion", 2010},
		{"4T1BE46K19U856421", "Toyota", "Toyota", "Camry", 2009},
		{"JM3KE4BY6G0636881", "Mazda", "Mazda", "CX-5", 2016},
		{"5YFB4MDE8PP030258", "Toyota", "Toyota", "Corolla", 2023},
		{"YT9NN1U14KA007175", "Koenigsegg", "Koenigsegg", "Regera", 2019},
		{"KNDCE3LG2L5073161", "Kia", "Kia", "Niro", 2020},
	}

	It("resolves known vehicles", func() {
		for _, c := range cases {
			v, err := vin.New(c.vin)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Manufacturer()).To(Equal(c.manufacturer), c.vin)
			Expect(v.Make()).To(Equal(c.make), c.vin)
			Expect(v.Model()).To(Equal(c.model), c.vin)
			Expect(v.ModelYear()).To(Equal(c.year), c.vin)
		}
	})

	It("prefers a six-character WMI over its three-character sibling", func() {
		veh, err := vin.Decode("YT9NN1U14KA007175")
		Expect(err).ToNot(HaveOccurred())
		Expect(veh.WMI).To(Equal("YT9007"))
		Expect(veh.Manufacturer).To(Equal("Koenigsegg"))
		Expect(veh.Country).To(Equal("Sweden"))
	})

	It("keeps the three-character WMI for mass-market vehicles", func() {
		veh, err := vin.Decode("5FNYF5H59HB011946")
		Expect(err).ToNot(HaveOccurred())
		Expect(veh.WMI).To(Equal("5FN"))
		Expect(veh.PlantCity).To(Equal("LINCOLN"))
		Expect(veh.PlantState).To(Equal("ALABAMA"))
		Expect(veh.PlantCountry).To(Equal("UNITED STATES (USA)"))
		Expect(veh.PlantCompany).To(Equal("Honda Manufacturing of Alabama, LLC"))
	})

	It("builds descriptions", func() {
		v, err := vin.New("KNDCE3LG2L5073161")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Series()).To(Equal("EX"))
		Expect(v.Trim()).To(Equal("Premium"))
		Expect(v.Description()).To(Equal("2020 Kia Niro EX Premium"))
		Expect(v.ElectrificationLevel()).To(
			Equal("Strong HEV (Hybrid Electric Vehicle)"))
	})

	It("decodes a vehicle with an unknown model year", func() {
		v, err := vin.New("5FNYF5H530B011946")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.ModelYear()).To(Equal(vin.YearUnknown))
		Expect(v.Manufacturer()).To(Equal("Honda"))
		// year-scoped patterns are out of reach without a model year
		Expect(v.Model()).To(Equal(""))
		Expect(v.VehicleType()).To(
			Equal("Multipurpose Passenger Vehicle (MPV)"))
	})

	It("returns empty fields for an unknown WMI", func() {
		veh, err := vin.Decode("11111111111111111")
		Expect(err).ToNot(HaveOccurred())
		Expect(veh.Manufacturer).To(Equal(""))
		Expect(veh.Make).To(Equal(""))
		Expect(veh.WMI).To(Equal("111"))
	})

	It("is deterministic across repeated accessor calls", func() {
		v, err := vin.New("5FNYF5H59HB011946")
		Expect(err).ToNot(HaveOccurred())
		first := v.Description()
		for i := 0; i < 5; i++ {
			Expect(v.Description()).To(Equal(first))
		}
	})

	It("is safe for concurrent use", func() {
		var wg sync.WaitGroup
		results := make([]string, 8)
		for i := 0; i < len(results); i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := vin.New("KNDCE3LG2L5073161")
				if err != nil {
					return
				}
				results[i] = v.Description()
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			Expect(r).To(Equal("2020 Kia Niro EX Premium"))
		}
	})
})

var _ = Describe("VpicVersion", func() {
	It("reports the snapshot provenance", func() {
		version, released, err := vin.VpicVersion()
		Expect(err).ToNot(HaveOccurred())
		Expect(version).ToNot(BeEmpty())
		Expect(released).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}$`))
	})
})
