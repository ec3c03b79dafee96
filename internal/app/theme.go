package app

import "charm.land/lipgloss/v2"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	tabStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Padding(0, 2)
	tabActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("125")).Background(lipgloss.Color("218")).Bold(true).Padding(0, 2)
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	pickerFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1)
	milestoneDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	completeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	currentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	upcomingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
