package theme

// ColorID indexes the overlay palette.
type ColorID int

const (
	ColText ColorID = iota
	ColTextDisabled
	ColWindowBg
	ColChildWindowBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgCollapsed
	ColTitleBgActive
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColComboBg
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColColumn
	ColColumnHovered
	ColColumnActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColCloseButton
	ColCloseButtonHovered
	ColCloseButtonActive
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTextSelectedBg
	ColModalWindowDarkening
	ColorCount
)

var colorNames = [ColorCount]string{
	"text", "text_disabled", "window_bg", "child_window_bg", "popup_bg",
	"border", "border_shadow", "frame_bg", "frame_bg_hovered", "frame_bg_active",
	"title_bg", "title_bg_collapsed", "title_bg_active", "menu_bar_bg",
	"scrollbar_bg", "scrollbar_grab", "scrollbar_grab_hovered", "scrollbar_grab_active",
	"combo_bg", "check_mark", "slider_grab", "slider_grab_active",
	"button", "button_hovered", "button_active",
	"header", "header_hovered", "header_active",
	"column", "column_hovered", "column_active",
	"resize_grip", "resize_grip_hovered", "resize_grip_active",
	"close_button", "close_button_hovered", "close_button_active",
	"plot_lines", "plot_lines_hovered", "plot_histogram", "plot_histogram_hovered",
	"text_selected_bg", "modal_window_darkening",
}

func (id ColorID) String() string {
	if id < 0 || id >= ColorCount {
		return "unknown"
	}
	return colorNames[id]
}

// lightPalette is the base palette every theme is derived from.
var lightPalette = Palette{
	ColText:                 {0.00, 0.00, 0.00, 1.00},
	ColTextDisabled:         {0.60, 0.60, 0.60, 1.00},
	ColWindowBg:             {0.88, 0.88, 0.88, 0.94},
	ColChildWindowBg:        {0.00, 0.00, 0.00, 0.00},
	ColPopupBg:              {1.00, 1.00, 1.00, 0.94},
	ColBorder:               {0.00, 0.00, 0.00, 0.39},
	ColBorderShadow:         {1.00, 1.00, 1.00, 0.10},
	ColFrameBg:              {0.75, 0.75, 0.75, 0.94},
	ColFrameBgHovered:       {0.26, 0.59, 0.98, 0.40},
	ColFrameBgActive:        {0.26, 0.59, 0.98, 0.67},
	ColTitleBg:              {0.96, 0.96, 0.96, 1.00},
	ColTitleBgCollapsed:     {1.00, 1.00, 1.00, 0.51},
	ColTitleBgActive:        {0.82, 0.82, 0.82, 1.00},
	ColMenuBarBg:            {0.86, 0.86, 0.86, 1.00},
	ColScrollbarBg:          {0.98, 0.98, 0.98, 0.53},
	ColScrollbarGrab:        {0.69, 0.69, 0.69, 1.00},
	ColScrollbarGrabHovered: {0.59, 0.59, 0.59, 1.00},
	ColScrollbarGrabActive:  {0.49, 0.49, 0.49, 1.00},
	ColComboBg:              {0.86, 0.86, 0.86, 0.99},
	ColCheckMark:            {0.26, 0.59, 0.98, 1.00},
	ColSliderGrab:           {0.24, 0.52, 0.88, 1.00},
	ColSliderGrabActive:     {0.26, 0.59, 0.98, 1.00},
	ColButton:               {0.26, 0.59, 0.98, 0.40},
	ColButtonHovered:        {0.26, 0.59, 0.98, 1.00},
	ColButtonActive:         {0.06, 0.53, 0.98, 1.00},
	ColHeader:               {0.26, 0.59, 0.98, 0.31},
	ColHeaderHovered:        {0.26, 0.59, 0.98, 0.80},
	ColHeaderActive:         {0.26, 0.59, 0.98, 1.00},
	ColColumn:               {0.39, 0.39, 0.39, 1.00},
	ColColumnHovered:        {0.26, 0.59, 0.98, 0.78},
	ColColumnActive:         {0.26, 0.59, 0.98, 1.00},
	ColResizeGrip:           {1.00, 1.00, 1.00, 0.50},
	ColResizeGripHovered:    {0.26, 0.59, 0.98, 0.67},
	ColResizeGripActive:     {0.26, 0.59, 0.98, 0.95},
	ColCloseButton:          {0.59, 0.59, 0.59, 0.50},
	ColCloseButtonHovered:   {0.98, 0.39, 0.36, 1.00},
	ColCloseButtonActive:    {0.98, 0.39, 0.36, 1.00},
	ColPlotLines:            {0.39, 0.39, 0.39, 1.00},
	ColPlotLinesHovered:     {1.00, 0.43, 0.35, 1.00},
	ColPlotHistogram:        {0.90, 0.70, 0.00, 1.00},
	ColPlotHistogramHovered: {1.00, 0.60, 0.00, 1.00},
	ColTextSelectedBg:       {0.26, 0.59, 0.98, 0.35},
	ColModalWindowDarkening: {0.20, 0.20, 0.20, 0.35},
}
