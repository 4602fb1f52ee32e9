package qr

import (
	"context"

	"gocv.io/x/gocv"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// CameraSource decodes QR codes from a video capture device. It owns the
// device handle, the detector, and the frame buffers, and releases all of
// them in Close regardless of how the capture loop exits.
type CameraSource struct {
	device   *gocv.VideoCapture
	detector gocv.QRCodeDetector
	frame    gocv.Mat
	points   gocv.Mat
	straight gocv.Mat
}

// OpenCamera opens the video capture device with the given index and
// prepares a QR detector for it. Returns ErrCameraOpen when the device
// cannot be acquired (missing, busy, or no permission).
func OpenCamera(deviceID int) (*CameraSource, error) {
	device, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, ksignererrors.Wrapf(ksignererrors.ErrCameraOpen, "device %d", deviceID)
	}
	if !device.IsOpened() {
		_ = device.Close()
		return nil, ksignererrors.Wrapf(ksignererrors.ErrCameraOpen, "device %d", deviceID)
	}

	return &CameraSource{
		device:   device,
		detector: gocv.NewQRCodeDetector(),
		frame:    gocv.NewMat(),
		points:   gocv.NewMat(),
		straight: gocv.NewMat(),
	}, nil
}

// Next grabs one frame and runs QR detection on it. Frames without a
// readable code yield ("", nil) so the capture loop keeps polling at
// frame-acquisition latency.
func (s *CameraSource) Next(_ context.Context) (string, error) {
	if ok := s.device.Read(&s.frame); !ok {
		return "", ksignererrors.ErrCameraRead
	}
	if s.frame.Empty() {
		return "", nil
	}

	return s.detector.DetectAndDecode(s.frame, &s.points, &s.straight), nil
}

// Close releases the camera handle, the detector, and the frame buffers.
// Safe to call on every exit path, including after a Next error.
func (s *CameraSource) Close() error {
	_ = s.frame.Close()
	_ = s.points.Close()
	_ = s.straight.Close()
	_ = s.detector.Close()
	return s.device.Close()
}
