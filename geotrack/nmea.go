package geotrack

import (
	"bufio"
	"os"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/walkmap/walk"
)

const kilometersPerNauticalMile = 1.852

func LoadNMEATrack(trackFilePath string) (lines []Line, err error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var (
		line     Line
		altitude *float64
	)

	endLine := func() {
		if len(line) > 0 {
			lines = append(lines, line)
			line = nil
		}
	}

	for scanner.Scan() {
		sentence, err := nmea.Parse(scanner.Text())
		if err != nil {
			return nil, err
		}

		switch sentence.DataType() {
		case nmea.TypeGGA:
			gga := sentence.(nmea.GGA)
			if gga.FixQuality != nmea.Invalid {
				alt := gga.Altitude
				altitude = &alt
			}

		case nmea.TypeRMC:
			rmc := sentence.(nmea.RMC)
			// A void status means the receiver lost its fix.
			if rmc.Validity != nmea.ValidRMC {
				endLine()
				continue
			}

			// Adds 2000 to the date... I think this will be sufficient for life :)
			date := time.Date(
				2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
				rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second, 0, time.UTC,
			)

			s := Sample{
				Lat:  rmc.Latitude,
				Lon:  rmc.Longitude,
				Time: date,
				Values: map[walk.Attribute]float64{
					walk.Speed: rmc.Speed * kilometersPerNauticalMile,
				},
			}
			if altitude != nil {
				s.Values[walk.Elevation] = *altitude
			}

			line = append(line, s)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	endLine()

	return
}
